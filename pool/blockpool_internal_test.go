// File: pool/blockpool_internal_test.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"testing"

	"github.com/momentics/segarr/arena"
)

func TestFreeListOverflowGoesToBase(t *testing.T) {
	base := arena.NewHeap[int]()
	p := NewBlockPool[int](base)
	p.idlePerClass = 1

	b1, _ := p.AllocBlock(4)
	b2, _ := p.AllocBlock(4)
	p.FreeBlock(b1)
	p.FreeBlock(b2) // free list full, forwarded to base

	if st := base.Stats(); st.TotalFree != 1 {
		t.Fatalf("base frees = %d, want 1", st.TotalFree)
	}
	if st := p.PoolStats(); st.Idle != 1 {
		t.Fatalf("Idle = %d, want 1", st.Idle)
	}
}
