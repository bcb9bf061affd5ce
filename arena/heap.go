// File: arena/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import (
	"sync/atomic"

	"github.com/momentics/segarr/api"
)

// Heap allocates blocks from the Go runtime heap.
// FreeBlock only drops the reference and lets the collector reclaim the
// backing array; counters still balance so Stats stays meaningful.
type Heap[T any] struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewHeap returns a heap-backed block allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// AllocBlock returns a block of exactly n elements. The Go runtime aborts the
// process on heap exhaustion, so the error result is always nil here.
func (h *Heap[T]) AllocBlock(n int) ([]T, error) {
	if n <= 0 {
		panic("arena: block size must be positive")
	}
	h.totalAlloc.Add(1)
	return make([]T, n), nil
}

// FreeBlock releases a block to the garbage collector.
func (h *Heap[T]) FreeBlock(block []T) {
	if block == nil {
		return
	}
	h.totalFree.Add(1)
}

// Stats reports allocation accounting.
func (h *Heap[T]) Stats() api.AllocStats {
	alloc := h.totalAlloc.Load()
	free := h.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}

var _ api.BlockAllocator[int] = (*Heap[int])(nil)
