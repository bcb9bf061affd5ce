//go:build linux
// +build linux

// File: arena/mmap_linux.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous-page block allocator. Blocks live outside the Go heap and are
// returned to the OS on free. Allocation can genuinely fail here, which makes
// this the path that exercises recoverable allocation errors.

package arena

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/segarr/api"
)

// Mmap allocates typed blocks via anonymous private mappings.
// The element type must be pointer-free: the collector does not scan mapped
// memory, and a Go pointer stored there would be collected out from under
// the container.
type Mmap[T any] struct {
	mu      sync.Mutex
	regions map[uintptr][]byte

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewMmap returns a page-backed block allocator for T.
func NewMmap[T any]() (*Mmap[T], error) {
	if t := reflect.TypeFor[T](); typeHasPointers(t) {
		return nil, api.NewError(api.ErrCodeNotSupported,
			"mmap arena requires a pointer-free element type").
			WithContext("type", t.String())
	}
	return &Mmap[T]{regions: make(map[uintptr][]byte)}, nil
}

// AllocBlock maps a fresh region sized for exactly n elements.
func (m *Mmap[T]) AllocBlock(n int) ([]T, error) {
	if n <= 0 {
		panic("arena: block size must be positive")
	}
	var zero T
	size := uintptr(n) * unsafe.Sizeof(zero)
	if size == 0 {
		size = 1
	}
	data, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %v: %w", size, err, api.ErrAllocFailed)
	}

	base := unsafe.Pointer(&data[0])
	m.mu.Lock()
	m.regions[uintptr(base)] = data
	m.mu.Unlock()
	m.totalAlloc.Add(1)

	return unsafe.Slice((*T)(base), n), nil
}

// FreeBlock unmaps a block previously returned by AllocBlock.
func (m *Mmap[T]) FreeBlock(block []T) {
	if block == nil {
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(block)))

	m.mu.Lock()
	data, ok := m.regions[key]
	delete(m.regions, key)
	m.mu.Unlock()

	if !ok {
		panic("arena: free of a block this arena does not own")
	}
	if err := unix.Munmap(data); err != nil {
		panic(fmt.Sprintf("arena: munmap: %v", err))
	}
	m.totalFree.Add(1)
}

// Stats reports allocation accounting.
func (m *Mmap[T]) Stats() api.AllocStats {
	alloc := m.totalAlloc.Load()
	free := m.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}

var _ api.BlockAllocator[int] = (*Mmap[int])(nil)
