// Package segarray
// Author: momentics <momentics@gmail.com>
//
// Segmented growable array with stable element addresses.
//
// SegArray grows by allocating discrete power-of-two segments (capacities
// 1, 2, 4, ..., 2^31) instead of reallocating one contiguous buffer, so an
// element never moves once written. Append, Pop and indexed access are O(1);
// segments are never released before the container is closed or drained.
//
// All types in this package are for single-goroutine use. No internal
// locking is provided; concurrent mutation requires external
// synchronization.
package segarray
