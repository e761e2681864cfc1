package vec

import "github.com/joshuapare/veckit/mem"

// Vector is a growable, contiguously-stored sequence of T on top of a
// mem.Allocator. The zero value is not usable; construct with New or
// NewIn. Invariant: slots [0, len) hold live values, [len, cap) are
// uninitialized and never read.
type Vector[T any] struct {
	buf rawBuffer[T]
	len int
}

// New returns an empty vector using the default allocator.
func New[T any]() *Vector[T] {
	return NewIn[T](mem.Default)
}

// NewIn returns an empty vector that allocates from a. Nothing is
// allocated until the first push.
func NewIn[T any](a mem.Allocator) *Vector[T] {
	return &Vector[T]{buf: newRawBuffer[T](a)}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the number of slots currently reserved.
func (v *Vector[T]) Cap() int { return v.buf.cap }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.len == 0 }

// Push appends elem, growing first when full. A growth failure is
// returned as a typed error and leaves the vector completely
// unchanged: length, capacity, and the slice view all keep their
// previous values. Any raw addresses previously derived from the
// backing storage may be invalidated by a successful push.
func (v *Vector[T]) Push(elem T) error {
	if v.len == v.buf.cap {
		if err := v.buf.grow(v.len + 1); err != nil {
			return err
		}
	}
	*v.buf.slot(v.len) = elem
	v.len++
	return nil
}

// Pop removes and returns the last element. The second result is false
// on an empty vector. Capacity never shrinks.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	p := v.buf.slot(v.len)
	elem := *p
	*p = zero // move out; the buffer no longer retains the value
	return elem, true
}

// Insert places elem at index, shifting [index, len) one slot right.
// index == Len() is valid and equivalent to Push. An out-of-range
// index panics; a growth failure is returned with the vector
// unchanged.
func (v *Vector[T]) Insert(index int, elem T) error {
	if index < 0 || index > v.len {
		panic("vec: index out of bounds")
	}
	if v.len == v.buf.cap {
		if err := v.buf.grow(v.len + 1); err != nil {
			return err
		}
	}
	if index < v.len && sizeOf[T]() != 0 {
		s := v.buf.view(v.len + 1)
		copy(s[index+1:], s[index:v.len]) // overlap-safe
	}
	*v.buf.slot(index) = elem
	v.len++
	return nil
}

// Remove takes the element at index out, shifting [index+1, len) one
// slot left to close the gap. An out-of-range index panics.
func (v *Vector[T]) Remove(index int) T {
	if index < 0 || index >= v.len {
		panic("vec: index out of bounds")
	}
	elem := *v.buf.slot(index)
	if sizeOf[T]() != 0 {
		s := v.buf.view(v.len)
		copy(s[index:], s[index+1:])
	}
	v.len--
	var zero T
	*v.buf.slot(v.len) = zero
	return elem
}

// At returns the element at index. Panics when index is out of range.
func (v *Vector[T]) At(index int) T {
	if index < 0 || index >= v.len {
		panic("vec: index out of bounds")
	}
	return *v.buf.slot(index)
}

// Set overwrites the element at index. Panics when index is out of range.
func (v *Vector[T]) Set(index int, elem T) {
	if index < 0 || index >= v.len {
		panic("vec: index out of bounds")
	}
	*v.buf.slot(index) = elem
}

// Slice exposes the live elements [0, Len()) as a contiguous
// read/write view. The view is invalidated by any operation that can
// reallocate or shift elements.
func (v *Vector[T]) Slice() []T {
	return v.buf.view(v.len)
}

// Clear drops every live element but keeps the capacity.
func (v *Vector[T]) Clear() {
	if sizeOf[T]() != 0 {
		var zero T
		for i := 0; i < v.len; i++ {
			*v.buf.slot(i) = zero
		}
	}
	v.len = 0
}

// Close releases every live element and then the backing block. The
// vector must not be used afterwards; a second Close is a no-op.
func (v *Vector[T]) Close() {
	for {
		if _, ok := v.Pop(); !ok {
			break
		}
	}
	v.buf.release()
}
