package mem

import (
	"math/bits"
	"unsafe"
)

// MaxAllocBytes is the largest byte size a single allocation may
// describe: half the address space, so offsets between any two
// addresses inside a block always fit in a signed int.
const MaxAllocBytes = ^uintptr(0) >> 1

// Layout describes a memory request: a size in bytes and a required
// alignment. Align must be a non-zero power of two.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a single value of type T. Zero-sized
// types yield a Size of 0 with their natural alignment.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{Size: unsafe.Sizeof(v), Align: unsafe.Alignof(v)}
}

// Repeat returns the layout of an array of n values with this element
// layout. It fails with ErrSizeOverflow when the total byte size would
// not fit in the addressable range, and with ErrBadAlign for an
// invalid alignment.
func (l Layout) Repeat(n int) (Layout, error) {
	if err := l.check(); err != nil {
		return Layout{}, err
	}
	if n < 0 {
		return Layout{}, ErrSizeOverflow
	}
	hi, size := bits.Mul(uint(l.Size), uint(n))
	if hi != 0 || uintptr(size) > MaxAllocBytes {
		return Layout{}, ErrSizeOverflow
	}
	return Layout{Size: uintptr(size), Align: l.Align}, nil
}

func (l Layout) check() error {
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		return ErrBadAlign
	}
	if l.Size > MaxAllocBytes {
		return ErrSizeOverflow
	}
	return nil
}

// alignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
