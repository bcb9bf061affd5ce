// File: segarray/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package segarray

import "github.com/momentics/segarr/api"

// Iterator is a one-shot consuming view over a drained SegArray. It owns the
// segments outright: elements are moved out one at a time by Next, and Close
// destroys whatever was not yet yielded before releasing the memory.
type Iterator[T any] struct {
	segments  [maxSegments][]T
	allocated uint32
	count     uint32
	cursor    uint32

	alloc   api.BlockAllocator[T]
	release func(*T)
	closed  bool
}

// Drain moves the array's entire state into a consuming iterator and leaves
// the array inert: every later operation on it reports api.ErrConsumed. The
// handoff is total; array and iterator never share a segment.
func (sa *SegArray[T]) Drain() (*Iterator[T], error) {
	if sa.inert {
		return nil, api.ErrConsumed
	}
	it := &Iterator[T]{
		segments:  sa.segments,
		allocated: sa.allocated,
		count:     sa.count,
		alloc:     sa.alloc,
		release:   sa.release,
	}
	sa.segments = [maxSegments][]T{}
	sa.count, sa.allocated = 0, 0
	sa.inert = true
	return it, nil
}

// More reports whether Next will yield another element.
func (it *Iterator[T]) More() bool {
	return !it.closed && it.cursor < it.count
}

// Next moves the next element out and yields it, in insertion order. After
// the last element, or after Close, it reports false.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.closed || it.cursor == it.count {
		return zero, false
	}
	s := segmentIndex(it.cursor)
	p := &it.segments[s][segmentSlot(it.cursor, s)]
	v := *p
	*p = zero
	it.cursor++
	return v, true
}

// Remaining returns how many elements are still unconsumed.
func (it *Iterator[T]) Remaining() int {
	if it.closed {
		return 0
	}
	return int(it.count - it.cursor)
}

// Close destroys the elements not yet yielded and releases every segment.
// Elements already moved out through Next are untouched. Safe to call more
// than once, and required even after full consumption so segment memory
// returns to the allocator.
func (it *Iterator[T]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	teardown(&it.segments, it.allocated, pendingRanges(it.cursor, it.count), it.release, it.alloc)
	it.allocated, it.count, it.cursor = 0, 0, 0
}
