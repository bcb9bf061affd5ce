// Package arena
// Author: momentics <momentics@gmail.com>
//
// Raw typed block allocators backing segmented containers.
// Heap allocates from the Go runtime and never fails; Mmap maps anonymous
// pages outside the GC heap (Linux only) and is the genuine fallible
// allocation path. Mmap memory is not scanned by the garbage collector, so
// it is restricted to pointer-free element types.
package arena
