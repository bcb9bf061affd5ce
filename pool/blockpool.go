// File: pool/blockpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/segarr/api"
)

// defaultIdlePerClass bounds how many freed blocks each size class retains.
// Overflow goes back to the wrapped allocator.
const defaultIdlePerClass = 64

// BlockPool wraps a BlockAllocator and recycles freed blocks through one FIFO
// free list per block size. Recycled blocks are cleared before reuse so a
// pooled segment is indistinguishable from a fresh one.
type BlockPool[T any] struct {
	base         api.BlockAllocator[T]
	idlePerClass int

	mu      sync.Mutex
	classes map[int]*queue.Queue // block size -> free list of []T

	hits   atomic.Int64
	misses atomic.Int64
}

// PoolStats counts free-list traffic. Idle is the number of blocks currently
// parked across all classes.
type PoolStats struct {
	Hits   int64
	Misses int64
	Idle   int64
}

// NewBlockPool returns a recycling pool over base.
func NewBlockPool[T any](base api.BlockAllocator[T]) *BlockPool[T] {
	return &BlockPool[T]{
		base:         base,
		idlePerClass: defaultIdlePerClass,
		classes:      make(map[int]*queue.Queue),
	}
}

// AllocBlock returns a recycled block of exactly n elements when one is
// parked, falling back to the wrapped allocator otherwise.
func (p *BlockPool[T]) AllocBlock(n int) ([]T, error) {
	p.mu.Lock()
	if q, ok := p.classes[n]; ok && q.Length() > 0 {
		block := q.Remove().([]T)
		p.mu.Unlock()
		p.hits.Add(1)
		return block, nil
	}
	p.mu.Unlock()

	p.misses.Add(1)
	return p.base.AllocBlock(n)
}

// FreeBlock parks the block for reuse, or forwards it to the wrapped
// allocator when the class free list is full.
func (p *BlockPool[T]) FreeBlock(block []T) {
	if block == nil {
		return
	}
	clear(block)

	n := len(block)
	p.mu.Lock()
	q, ok := p.classes[n]
	if !ok {
		q = queue.New()
		p.classes[n] = q
	}
	if q.Length() < p.idlePerClass {
		q.Add(block)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.base.FreeBlock(block)
}

// Drain releases every parked block to the wrapped allocator.
func (p *BlockPool[T]) Drain() {
	p.mu.Lock()
	var parked [][]T
	for _, q := range p.classes {
		for q.Length() > 0 {
			parked = append(parked, q.Remove().([]T))
		}
	}
	p.mu.Unlock()

	for _, block := range parked {
		p.base.FreeBlock(block)
	}
}

// Stats reports the wrapped allocator's accounting. Blocks parked in the
// pool still count as in use at the allocator level; see PoolStats for
// free-list traffic.
func (p *BlockPool[T]) Stats() api.AllocStats {
	return p.base.Stats()
}

// PoolStats reports free-list hit/miss counters and the parked block count.
func (p *BlockPool[T]) PoolStats() PoolStats {
	p.mu.Lock()
	var idle int64
	for _, q := range p.classes {
		idle += int64(q.Length())
	}
	p.mu.Unlock()

	return PoolStats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Idle:   idle,
	}
}

var _ api.BlockAllocator[int] = (*BlockPool[int])(nil)
