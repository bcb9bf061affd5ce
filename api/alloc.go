// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Abstract block allocation: typed raw-capacity blocks for containers that
// manage element lifetime themselves.

package api

// BlockAllocator hands out independently allocated blocks of exactly n
// elements of T. Block contents are uninitialized from the container's point
// of view: the allocator guarantees nothing about them beyond the zero state
// Go requires, and the caller must construct elements explicitly before
// reading them back.
type BlockAllocator[T any] interface {
	// AllocBlock returns a block of exactly n elements, or ErrAllocFailed
	// (possibly wrapped) if the underlying allocator cannot satisfy the
	// request. n must be positive.
	AllocBlock(n int) ([]T, error)

	// FreeBlock returns a block previously obtained from AllocBlock.
	// The block must not be used afterwards.
	FreeBlock(block []T)

	// Stats exposes allocation accounting for observability.
	Stats() AllocStats
}

// AllocStats aggregates block allocation/release counters.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
