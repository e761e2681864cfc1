//go:build unix

package mem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator satisfies Allocator with anonymous page mappings. Every
// block occupies whole pages outside the Go heap, so element types
// stored in it must not contain Go pointers.
type MmapAllocator struct {
	pageSize uintptr
}

// NewMmap returns a page-granular allocator, or ErrUnsupported on
// platforms without memory mapping.
func NewMmap() (*MmapAllocator, error) {
	return &MmapAllocator{pageSize: uintptr(os.Getpagesize())}, nil
}

func (m *MmapAllocator) Allocate(layout Layout) (Block, error) {
	if err := layout.check(); err != nil {
		return Block{}, err
	}
	if layout.Align > m.pageSize {
		return Block{}, fmt.Errorf("%w: alignment %d exceeds page size", ErrBadAlign, layout.Align)
	}
	if layout.Size == 0 {
		return Block{}, nil
	}
	mapped := alignUp(layout.Size, m.pageSize)
	data, err := unix.Mmap(-1, 0, int(mapped),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return Block{}, fmt.Errorf("mem: mmap %d bytes: %w", mapped, err)
	}
	return Block{Ptr: unsafe.Pointer(unsafe.SliceData(data)), Size: layout.Size}, nil
}

func (m *MmapAllocator) Grow(b Block, oldLayout, newLayout Layout) (Block, error) {
	nb, err := m.Allocate(newLayout)
	if err != nil {
		return Block{}, err
	}
	moveBlock(nb, b, oldLayout.Size)
	m.Deallocate(b, oldLayout)
	return nb, nil
}

func (m *MmapAllocator) Deallocate(b Block, layout Layout) {
	if b.Ptr == nil || layout.Size == 0 {
		return
	}
	mapped := alignUp(layout.Size, m.pageSize)
	// Reconstruct the mapping slice; a failed munmap leaves the pages
	// mapped, which is not recoverable here.
	_ = unix.Munmap(unsafe.Slice((*byte)(b.Ptr), mapped))
}

var _ Allocator = (*MmapAllocator)(nil)
