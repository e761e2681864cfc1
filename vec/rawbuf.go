package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/veckit/mem"
)

// bufState tags what a rawBuffer holds, so no code path can confuse an
// unallocated buffer with a zero-sized-element one or touch a buffer
// after its block was handed off.
type bufState uint8

const (
	bufEmpty bufState = iota
	bufAllocated
	bufZeroSized
	bufReleased
)

// firstCapacity is the slot count of the first allocation.
const firstCapacity = 4

// zeroBase backs the shared degenerate address for zero-sized
// elements. A uint64 keeps that address aligned for any zero-sized
// element type, including ones like [0]uint64 with the platform's
// widest alignment.
var zeroBase uint64

// rawBuffer owns one contiguous block sized for cap elements of T, or
// no block at all. Invariant: in the allocated state, ptr denotes an
// allocator-owned block of exactly cap slots.
type rawBuffer[T any] struct {
	ptr   unsafe.Pointer
	cap   int
	state bufState
	alloc mem.Allocator
}

func newRawBuffer[T any](a mem.Allocator) rawBuffer[T] {
	if a == nil {
		a = mem.Default
	}
	if sizeOf[T]() == 0 {
		// No storage is ever consumed; only the count is bounded.
		return rawBuffer[T]{cap: math.MaxInt, state: bufZeroSized, alloc: a}
	}
	return rawBuffer[T]{state: bufEmpty, alloc: a}
}

func sizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// grow reallocates to the next capacity step: firstCapacity on the
// first growth, then cap+cap/2, raised to minCap when a single call
// must open more room, clamped so the byte size stays representable.
// On failure the buffer keeps its previous state untouched.
func (b *rawBuffer[T]) grow(minCap int) error {
	switch b.state {
	case bufZeroSized:
		// Growth is never needed for zero-sized elements; getting here
		// means the caller's length already saturated the maximum count.
		return ErrCapacityOverflow
	case bufReleased:
		panic("vec: use of released buffer")
	}
	if minCap < 0 {
		return ErrCapacityOverflow
	}

	elem := mem.LayoutOf[T]()
	newCap := b.cap + b.cap/2
	if b.cap == 0 {
		newCap = firstCapacity
	}
	if newCap < minCap {
		newCap = minCap
	}
	if maxCap := int(mem.MaxAllocBytes / elem.Size); newCap > maxCap {
		newCap = maxCap
		if newCap < minCap {
			return ErrAllocationTooLarge
		}
	}
	newLayout, err := elem.Repeat(newCap)
	if err != nil {
		return ErrAllocationTooLarge
	}

	var blk mem.Block
	if b.state == bufEmpty {
		blk, err = b.alloc.Allocate(newLayout)
	} else {
		oldLayout, lerr := elem.Repeat(b.cap)
		if lerr != nil {
			return ErrAllocationTooLarge
		}
		blk, err = b.alloc.Grow(mem.Block{Ptr: b.ptr, Size: oldLayout.Size}, oldLayout, newLayout)
	}
	if err != nil {
		return fmt.Errorf("%w: growing to %d slots: %w", ErrAllocationFailed, newCap, err)
	}

	// Commit pointer and capacity together only on success.
	b.ptr = blk.Ptr
	b.cap = newCap
	b.state = bufAllocated
	return nil
}

// release returns the block to the allocator. Only the allocated state
// holds a block; empty and zero-sized buffers never allocated one. The
// released state makes a second call a no-op, so the block goes back
// exactly once.
func (b *rawBuffer[T]) release() {
	if b.state == bufAllocated {
		layout, err := mem.LayoutOf[T]().Repeat(b.cap)
		if err == nil {
			b.alloc.Deallocate(mem.Block{Ptr: b.ptr, Size: layout.Size}, layout)
		}
	}
	b.ptr = nil
	b.cap = 0
	b.state = bufReleased
}

// take transfers ownership of the buffer to the caller and marks the
// source released without deallocating.
func (b *rawBuffer[T]) take() rawBuffer[T] {
	moved := *b
	b.ptr = nil
	b.cap = 0
	b.state = bufReleased
	return moved
}

// slot returns the address of slot i. Zero-sized elements all share
// one degenerate address. The caller keeps i inside the live range.
func (b *rawBuffer[T]) slot(i int) *T {
	if sizeOf[T]() == 0 {
		return (*T)(unsafe.Pointer(&zeroBase))
	}
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*sizeOf[T]()))
}

// view exposes the first n slots as a slice. Valid for n == 0 even
// before anything was allocated.
func (b *rawBuffer[T]) view(n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(b.slot(0), n)
}
