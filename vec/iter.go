package vec

import "unsafe"

// cursor tracks an index pair [head, tail) over a contiguous run.
// Values move out through it from either end; a moved-out slot is
// zeroed so the buffer no longer retains the value. For zero-sized
// elements the indexes are pure counters and base is never used.
type cursor[T any] struct {
	base unsafe.Pointer
	head int
	tail int
}

func newCursor[T any](base unsafe.Pointer, n int) cursor[T] {
	return cursor[T]{base: base, tail: n}
}

func (c *cursor[T]) slot(i int) *T {
	if sizeOf[T]() == 0 {
		return (*T)(unsafe.Pointer(&zeroBase))
	}
	return (*T)(unsafe.Add(c.base, uintptr(i)*sizeOf[T]()))
}

func (c *cursor[T]) next() (T, bool) {
	var zero T
	if c.head == c.tail {
		return zero, false
	}
	p := c.slot(c.head)
	elem := *p
	*p = zero
	c.head++
	return elem, true
}

func (c *cursor[T]) nextBack() (T, bool) {
	var zero T
	if c.head == c.tail {
		return zero, false
	}
	c.tail--
	p := c.slot(c.tail)
	elem := *p
	*p = zero
	return elem, true
}

// remaining is the exact count of elements not yet yielded.
func (c *cursor[T]) remaining() int { return c.tail - c.head }

// finish moves out and discards everything not yet yielded.
func (c *cursor[T]) finish() {
	for {
		if _, ok := c.next(); !ok {
			return
		}
	}
}

// Drain moves every live element out of the vector. The length is
// truncated to zero before the first yield, so the vector is valid and
// empty from this call onward even if the iterator is abandoned early.
// The vector must not be otherwise used until the drain is closed.
func (v *Vector[T]) Drain() *Drain[T] {
	c := newCursor[T](v.buf.ptr, v.len)
	v.len = 0
	return &Drain[T]{cur: c}
}

// Drain yields the elements that were live when the drain started,
// from either end. It borrows the vector's storage and never releases
// the backing allocation.
type Drain[T any] struct {
	cur cursor[T]
}

// Next yields the frontmost remaining element.
func (d *Drain[T]) Next() (T, bool) { return d.cur.next() }

// NextBack yields the backmost remaining element.
func (d *Drain[T]) NextBack() (T, bool) { return d.cur.nextBack() }

// Len is the exact number of elements not yet yielded.
func (d *Drain[T]) Len() int { return d.cur.remaining() }

// Close finishes moving out any elements not yet yielded, so nothing
// stays live in the buffer unobserved. Safe to call more than once.
func (d *Drain[T]) Close() { d.cur.finish() }

// IntoIter consumes the vector: ownership of the backing block moves
// to the iterator and the vector is left empty and released. Elements
// are yielded by move from either end.
func (v *Vector[T]) IntoIter() *IntoIter[T] {
	c := newCursor[T](v.buf.ptr, v.len)
	v.len = 0
	return &IntoIter[T]{buf: v.buf.take(), cur: c}
}

// IntoIter owns the backing block of a consumed vector and yields its
// elements by move.
type IntoIter[T any] struct {
	buf rawBuffer[T]
	cur cursor[T]
}

// Next yields the frontmost remaining element.
func (it *IntoIter[T]) Next() (T, bool) { return it.cur.next() }

// NextBack yields the backmost remaining element.
func (it *IntoIter[T]) NextBack() (T, bool) { return it.cur.nextBack() }

// Len is the exact number of elements not yet yielded.
func (it *IntoIter[T]) Len() int { return it.cur.remaining() }

// Close finishes the remaining elements and then releases the backing
// block. However many elements were yielded, the block goes back to
// the allocator exactly once; further calls are no-ops.
func (it *IntoIter[T]) Close() {
	it.cur.finish()
	it.buf.release()
}

// Iter returns a borrowing double-ended iterator over the live
// elements. Values are copied, nothing moves. Mutating the vector
// while an Iter is outstanding invalidates it.
func (v *Vector[T]) Iter() *Iter[T] {
	return &Iter[T]{v: v, tail: v.len}
}

// Iter reads the vector's elements front-to-back, back-to-front, or
// any mix of both.
type Iter[T any] struct {
	v    *Vector[T]
	head int
	tail int
}

// Next yields a copy of the frontmost remaining element.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.head == it.tail {
		return zero, false
	}
	elem := *it.v.buf.slot(it.head)
	it.head++
	return elem, true
}

// NextBack yields a copy of the backmost remaining element.
func (it *Iter[T]) NextBack() (T, bool) {
	var zero T
	if it.head == it.tail {
		return zero, false
	}
	it.tail--
	return *it.v.buf.slot(it.tail), true
}

// Len is the exact number of elements not yet yielded.
func (it *Iter[T]) Len() int { return it.tail - it.head }
