//go:build !linux
// +build !linux

// File: arena/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub mmap arena for platforms without anonymous mapping support here.

package arena

import "github.com/momentics/segarr/api"

// Mmap is unavailable on this platform; NewMmap reports not supported.
type Mmap[T any] struct{}

// NewMmap always fails on this platform.
func NewMmap[T any]() (*Mmap[T], error) {
	return nil, api.NewError(api.ErrCodeNotSupported, "mmap arena is only available on linux")
}

func (m *Mmap[T]) AllocBlock(n int) ([]T, error) {
	return nil, api.ErrNotSupported
}

func (m *Mmap[T]) FreeBlock(block []T) {}

func (m *Mmap[T]) Stats() api.AllocStats {
	return api.AllocStats{}
}

var _ api.BlockAllocator[int] = (*Mmap[int])(nil)
