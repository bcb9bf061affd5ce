// File: pool/blockpool_test.go
// Author: momentics <momentics@gmail.com>

package pool_test

import (
	"testing"

	"github.com/momentics/segarr/arena"
	"github.com/momentics/segarr/pool"
	"github.com/momentics/segarr/segarray"
)

func TestBlockPoolRecycles(t *testing.T) {
	p := pool.NewBlockPool[int](arena.NewHeap[int]())

	b1, err := p.AllocBlock(8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range b1 {
		b1[i] = i + 1
	}
	p.FreeBlock(b1)

	b2, err := p.AllocBlock(8)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range b2 {
		if v != 0 {
			t.Fatalf("recycled block leaked contents: slot %d = %d", i, v)
		}
	}
	if st := p.PoolStats(); st.Hits != 1 || st.Misses != 1 {
		t.Fatalf("pool stats: %+v", st)
	}
}

func TestBlockPoolClassesAreExact(t *testing.T) {
	p := pool.NewBlockPool[int](arena.NewHeap[int]())
	b, err := p.AllocBlock(8)
	if err != nil {
		t.Fatal(err)
	}
	p.FreeBlock(b)

	// A different size must not be served from the 8-slot free list.
	b2, err := p.AllocBlock(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(b2) != 16 {
		t.Fatalf("got %d-slot block", len(b2))
	}
	if st := p.PoolStats(); st.Hits != 0 {
		t.Fatalf("cross-class hit: %+v", st)
	}
}

func TestBlockPoolDrain(t *testing.T) {
	base := arena.NewHeap[int]()
	p := pool.NewBlockPool[int](base)
	for i := 0; i < 4; i++ {
		b, err := p.AllocBlock(4)
		if err != nil {
			t.Fatal(err)
		}
		p.FreeBlock(b)
	}
	p.Drain()
	if st := p.PoolStats(); st.Idle != 0 {
		t.Fatalf("Idle = %d after Drain", st.Idle)
	}
	if st := base.Stats(); st.InUse != 0 {
		t.Fatalf("base allocator still in use: %+v", st)
	}
}

// Two arrays in sequence share segment blocks through the pool.
func TestBlockPoolBacksSegArrays(t *testing.T) {
	p := pool.NewBlockPool[int](arena.NewHeap[int]())

	first := segarray.NewWithAllocator[int](p)
	for i := 0; i < 25; i++ {
		if err := first.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	first.Close()

	second := segarray.NewWithAllocator[int](p)
	for i := 0; i < 25; i++ {
		if err := second.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 25; i++ {
		if v, err := second.At(i); err != nil || v != i {
			t.Fatalf("At(%d) = %d, %v", i, v, err)
		}
	}
	second.Close()

	st := p.PoolStats()
	if st.Hits != 5 {
		t.Fatalf("second array should reuse all 5 segments, got %+v", st)
	}
}
