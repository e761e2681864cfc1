//go:build !unix

package mem

// MmapAllocator is only available on unix platforms.
type MmapAllocator struct{}

// NewMmap reports that memory mapping is unavailable here.
func NewMmap() (*MmapAllocator, error) {
	return nil, ErrUnsupported
}

func (*MmapAllocator) Allocate(Layout) (Block, error) {
	return Block{}, ErrUnsupported
}

func (*MmapAllocator) Grow(Block, Layout, Layout) (Block, error) {
	return Block{}, ErrUnsupported
}

func (*MmapAllocator) Deallocate(Block, Layout) {}

var _ Allocator = (*MmapAllocator)(nil)
