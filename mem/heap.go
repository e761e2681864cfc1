package mem

import (
	"math"
	"unsafe"
)

// HeapAllocator satisfies Allocator with storage from the Go heap.
//
// Blocks stay alive for as long as their pointer is reachable, so
// Deallocate has nothing to release. Alignments beyond what the heap
// guarantees are honored by over-allocating and shifting the returned
// pointer; interior pointers keep the whole backing object reachable.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(layout Layout) (Block, error) {
	if err := layout.check(); err != nil {
		return Block{}, err
	}
	if layout.Size == 0 {
		return Block{}, nil
	}
	// The padding addition must not wrap around, and the padded length
	// must fit in a slice length.
	padded := layout.Size + layout.Align - 1
	if padded < layout.Size || padded > math.MaxInt {
		return Block{}, ErrSizeOverflow
	}
	buf, err := makeBytes(int(padded))
	if err != nil {
		return Block{}, err
	}
	base := unsafe.Pointer(unsafe.SliceData(buf))
	shift := alignUp(uintptr(base), layout.Align) - uintptr(base)
	return Block{Ptr: unsafe.Add(base, shift), Size: layout.Size}, nil
}

func (a HeapAllocator) Grow(b Block, oldLayout, newLayout Layout) (Block, error) {
	nb, err := a.Allocate(newLayout)
	if err != nil {
		return Block{}, err
	}
	moveBlock(nb, b, oldLayout.Size)
	return nb, nil
}

func (HeapAllocator) Deallocate(Block, Layout) {
	// Reclamation is the collector's job once the pointer goes out of
	// reach.
}

// makeBytes allocates n bytes, converting the runtime's length-range
// panic into an error so an oversized request is declined rather than
// terminating the process.
func makeBytes(n int) (buf []byte, err error) {
	defer func() {
		if recover() != nil {
			buf, err = nil, ErrSizeOverflow
		}
	}()
	return make([]byte, n), nil
}

// moveBlock copies n bytes from the start of src into dst.
func moveBlock(dst, src Block, n uintptr) {
	if n == 0 || src.Ptr == nil {
		return
	}
	if n > dst.Size {
		n = dst.Size
	}
	copy(unsafe.Slice((*byte)(dst.Ptr), n), unsafe.Slice((*byte)(src.Ptr), n))
}

var _ Allocator = HeapAllocator{}
