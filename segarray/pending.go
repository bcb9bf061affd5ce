// File: segarray/pending.go
// Author: momentics <momentics@gmail.com>
//
// Teardown arithmetic shared by SegArray.Close and Iterator.Close: given how
// many elements were already moved out, compute exactly which slots still
// hold constructed elements.

package segarray

import "github.com/momentics/segarr/api"

// blockRange addresses n consecutive constructed elements inside one
// segment, starting at off.
type blockRange struct {
	seg uint32
	off uint32
	n   uint32
}

// pendingRanges returns the per-segment ranges of elements in [cursor, count)
// still awaiting destruction. The cursor may land mid-segment; the last range
// may cover only part of the most recently allocated segment. Empty when
// cursor == count.
func pendingRanges(cursor, count uint32) []blockRange {
	var out []blockRange
	for idx := cursor; idx < count; {
		s := segmentIndex(idx)
		off := segmentSlot(idx, s)
		n := uint32(1)<<s - off
		if remain := count - idx; remain < n {
			n = remain
		}
		out = append(out, blockRange{seg: s, off: off, n: n})
		idx += n
	}
	return out
}

// teardown destroys the elements named by ranges, then releases every
// allocated segment back to alloc and clears the segment table. Destroyed
// slots are zeroed before their block is freed so no element is ever
// destroyed twice.
func teardown[T any](segments *[maxSegments][]T, allocated uint32, ranges []blockRange, release func(*T), alloc api.BlockAllocator[T]) {
	for _, r := range ranges {
		seg := segments[r.seg]
		if release != nil {
			for j := r.off; j < r.off+r.n; j++ {
				release(&seg[j])
			}
		}
		clear(seg[r.off : r.off+r.n])
	}
	for i := uint32(0); i < allocated; i++ {
		alloc.FreeBlock(segments[i])
		segments[i] = nil
	}
}
