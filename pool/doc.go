// Package pool
// Author: momentics <momentics@gmail.com>
//
// Block recycling for segmented containers.
// BlockPool fronts any api.BlockAllocator with per-size-class FIFO free
// lists, so segment blocks freed by one container can back another without
// a round trip to the underlying allocator. See blockpool.go.
package pool
