//go:build unix

package dma

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapAllocator backs scratch buffers with anonymous, page-locked mappings.
// Mlock keeps the pages resident so a real transport could safely hand the
// address to device DMA; an ordinary heap-allocated []byte offers no such
// guarantee once the Go runtime moves or collects it.
type mmapAllocator struct{}

// New returns the platform DMA allocator.
func New() Allocator {
	return mmapAllocator{}
}

func (mmapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dma: invalid alloc size %d", size)
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("dma: mmap: %w", err)
	}
	if err := unix.Mlock(buf); err != nil {
		// Not fatal: some sandboxes cap RLIMIT_MEMLOCK. The mapping is
		// still usable, just not guaranteed resident.
		_ = err
	}
	return buf, nil
}

func (mmapAllocator) Free(buf []byte) error {
	if buf == nil {
		return nil
	}
	_ = unix.Munlock(buf)
	return unix.Munmap(buf)
}
