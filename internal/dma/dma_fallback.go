//go:build !unix

package dma

import "fmt"

// fallbackAllocator backs scratch buffers with plain heap allocations on
// platforms without mmap/mlock. It is functionally correct but gives no
// DMA-residency guarantee.
type fallbackAllocator struct{}

// New returns the platform DMA allocator.
func New() Allocator {
	return fallbackAllocator{}
}

func (fallbackAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dma: invalid alloc size %d", size)
	}
	return make([]byte, size), nil
}

func (fallbackAllocator) Free([]byte) error {
	return nil
}
