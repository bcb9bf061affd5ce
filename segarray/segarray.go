// File: segarray/segarray.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package segarray

import (
	"math"
	"math/bits"

	"github.com/momentics/segarr/api"
	"github.com/momentics/segarr/arena"
)

// maxSegments caps the segment table. Cumulative capacity across all 32
// segments is 2^32 - 1 elements.
const maxSegments = 32

// SegArray is a segmented growable array of T.
//
// Segment i holds exactly 1<<i elements, and segments form a gapless prefix:
// segment i+1 exists only if segment i does. Element index idx lives in
// segment floor(log2(idx+1)) at slot idx+1-2^s, which lays indices out in
// insertion order across segments. Slots at indices >= Len are allocated but
// uninitialized and must never be read.
type SegArray[T any] struct {
	count     uint32
	allocated uint32
	segments  [maxSegments][]T

	alloc   api.BlockAllocator[T]
	release func(*T)
	inert   bool
}

// New returns an empty array backed by the Go heap. No segment is allocated
// until the first append.
func New[T any]() *SegArray[T] {
	return NewWithAllocator[T](arena.NewHeap[T]())
}

// NewWithAllocator returns an empty array whose segments come from a.
func NewWithAllocator[T any](a api.BlockAllocator[T]) *SegArray[T] {
	return &SegArray[T]{alloc: a}
}

// SetReleaseFunc registers a destructor invoked once per element destroyed
// during Close or an iterator's early teardown. Elements moved out through
// Pop or Iterator.Next are never passed to it.
func (sa *SegArray[T]) SetReleaseFunc(fn func(*T)) {
	sa.release = fn
}

// Len returns the number of elements present.
func (sa *SegArray[T]) Len() int {
	return int(sa.count)
}

// IsEmpty reports whether the array holds no elements.
func (sa *SegArray[T]) IsEmpty() bool {
	return sa.count == 0
}

// Segments returns the number of segments currently allocated.
func (sa *SegArray[T]) Segments() int {
	return int(sa.allocated)
}

// Append adds v after the last element.
//
// On allocation failure the array is unchanged: segments register one at a
// time, each only after its block allocation succeeded, so no partially
// grown state is ever observable.
func (sa *SegArray[T]) Append(v T) error {
	if sa.inert {
		return api.ErrConsumed
	}
	if sa.count == math.MaxUint32 {
		return api.NewError(api.ErrCodeResourceExhausted, "segarray: segment table full").
			WithContext("len", sa.count)
	}
	newCount := sa.count + 1
	if err := sa.grow(newCount); err != nil {
		return err
	}
	s := segmentIndex(sa.count)
	sa.segments[s][segmentSlot(sa.count, s)] = v
	sa.count = newCount
	return nil
}

// Pop removes and returns the last element. The vacated slot becomes
// uninitialized again; its segment is never released. On an empty or
// consumed array Pop reports false.
func (sa *SegArray[T]) Pop() (T, bool) {
	var zero T
	if sa.inert || sa.count == 0 {
		return zero, false
	}
	sa.count--
	s := segmentIndex(sa.count)
	p := &sa.segments[s][segmentSlot(sa.count, s)]
	v := *p
	*p = zero
	return v, true
}

// At returns the element at index i.
func (sa *SegArray[T]) At(i int) (T, error) {
	p, err := sa.ptrAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ptr returns the address of the element at index i. The address stays valid
// until the element is popped or the array is closed or drained: appends
// never move existing elements.
func (sa *SegArray[T]) Ptr(i int) (*T, error) {
	return sa.ptrAt(i)
}

// Set replaces the element at index i.
func (sa *SegArray[T]) Set(i int, v T) error {
	p, err := sa.ptrAt(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Close destroys every live element, releases all segments to the allocator
// and leaves the array inert. Safe to call more than once.
func (sa *SegArray[T]) Close() {
	if sa.inert {
		return
	}
	sa.inert = true
	teardown(&sa.segments, sa.allocated, pendingRanges(0, sa.count), sa.release, sa.alloc)
	sa.count, sa.allocated = 0, 0
}

// grow allocates segments until cumulative capacity covers newCount.
func (sa *SegArray[T]) grow(newCount uint32) error {
	need := segmentsForCount(newCount)
	for i := sa.allocated; i < need; i++ {
		block, err := sa.alloc.AllocBlock(1 << i)
		if err != nil {
			return api.NewError(api.ErrCodeAllocFailed, "segarray: segment allocation failed").
				WithContext("segment", i).
				WithContext("capacity", uint32(1)<<i).
				WithContext("cause", err.Error())
		}
		sa.segments[i] = block
		sa.allocated = i + 1
	}
	return nil
}

func (sa *SegArray[T]) ptrAt(i int) (*T, error) {
	if sa.inert {
		return nil, api.ErrConsumed
	}
	if i < 0 || uint64(i) >= uint64(sa.count) {
		return nil, api.NewError(api.ErrCodeOutOfRange, "segarray: index out of range").
			WithContext("index", i).
			WithContext("len", sa.count)
	}
	idx := uint32(i)
	s := segmentIndex(idx)
	seg := sa.segments[s]
	if seg == nil {
		// Bounds checking above makes this unreachable.
		panic("segarray: segment missing for in-range index")
	}
	return &seg[segmentSlot(idx, s)], nil
}

// segmentIndex returns the segment holding element index idx:
// floor(log2(idx+1)).
func segmentIndex(idx uint32) uint32 {
	return uint32(bits.Len32(idx+1) - 1)
}

// segmentSlot returns the position of idx inside segment s: idx + 1 - 2^s.
func segmentSlot(idx, s uint32) uint32 {
	return idx + 1 - 1<<s
}

// segmentsForCount returns the minimum number of segments whose cumulative
// capacity 2^S - 1 covers count elements: ceil(log2(count+1)).
func segmentsForCount(count uint32) uint32 {
	return uint32(bits.Len32(count))
}
