package mem

import "unsafe"

// Arena is a fixed-capacity bump allocator. Allocation advances an
// offset through one contiguous region; individual blocks are never
// freed. Grow copies into a fresh block and the old one becomes dead
// space until Reset reclaims the whole region.
//
// An Arena declines requests it cannot satisfy instead of growing its
// region, which makes it the natural allocator for exercising a
// container's allocation-failure paths.
type Arena struct {
	buf []byte
	off uintptr
}

// NewArena returns an arena over a fresh region of the given byte size.
func NewArena(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{buf: make([]byte, size)}
}

func (a *Arena) Allocate(layout Layout) (Block, error) {
	if err := layout.check(); err != nil {
		return Block{}, err
	}
	if layout.Size == 0 {
		return Block{}, nil
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	start := alignUp(base+a.off, layout.Align) - base
	if start+layout.Size > uintptr(len(a.buf)) {
		return Block{}, ErrArenaFull
	}
	a.off = start + layout.Size
	return Block{Ptr: unsafe.Pointer(&a.buf[start]), Size: layout.Size}, nil
}

func (a *Arena) Grow(b Block, oldLayout, newLayout Layout) (Block, error) {
	nb, err := a.Allocate(newLayout)
	if err != nil {
		return Block{}, err
	}
	// The old block becomes dead space until Reset.
	moveBlock(nb, b, oldLayout.Size)
	return nb, nil
}

func (a *Arena) Deallocate(Block, Layout) {
	// Bump allocation has no per-block free.
}

// Reset reclaims the entire region. Every block handed out so far is
// invalid after this call.
func (a *Arena) Reset() {
	a.off = 0
}

// Remaining reports how many bytes are still unclaimed, ignoring any
// alignment padding a future request may need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.off)
}

var _ Allocator = (*Arena)(nil)
