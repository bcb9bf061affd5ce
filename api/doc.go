// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts shared across the segarr library: block allocation interfaces,
// allocation accounting, and the common error surface.
//
// A "block" is raw element capacity. Allocators hand out blocks whose
// contents must be treated as uninitialized until explicitly written;
// containers are responsible for element lifetime within a block.
package api
