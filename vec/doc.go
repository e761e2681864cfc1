// Package vec implements a growable, contiguously-stored vector built
// directly on the mem allocation capability.
//
// # Overview
//
// Vector[T] owns one contiguous block obtained from a mem.Allocator and
// a length. It grows by a fixed policy (first growth to 4 slots, then
// roughly 1.5x), never shrinks, and reports allocation problems as
// typed errors instead of aborting. All pointer arithmetic is confined
// to the internal buffer and cursor; everything callers touch is
// bounds-checked.
//
// # Key Types
//
//   - Vector: the container; Push, Pop, Insert, Remove, Slice, Drain
//   - Iter: borrowing double-ended iteration, values are copied
//   - IntoIter: consuming iteration; takes the backing allocation
//   - Drain: moves every live element out, leaving the vector empty
//
// # Ownership
//
// A Vector is single-owner and single-threaded. Close releases every
// live element and then the backing block, exactly once. IntoIter takes
// the backing block with it; the drained-from or consumed-from vector
// is valid and empty afterwards. Abandoning a Drain or IntoIter early
// is safe, but Close must be called so the elements not yet yielded are
// moved out rather than silently kept alive in the buffer.
//
// # Element Types
//
// The backing block is untyped memory, so the garbage collector does
// not trace values stored in it. Use element types that contain no Go
// pointers (integers, floats, flat structs, arrays of these). Slots
// are zeroed as values move out, so a yielded element is never also
// retained by the buffer.
//
// # Zero-Sized Elements
//
// Element types with no storage (struct{} and friends) never allocate:
// capacity is pinned at the maximum representable count and iteration
// counts steps instead of dereferencing.
//
// # Usage Example
//
//	v := vec.New[int]()
//	defer v.Close()
//
//	for i := 0; i < 10; i++ {
//	    if err := v.Push(i); err != nil {
//	        return err
//	    }
//	}
//
//	d := v.Drain()
//	defer d.Close()
//	for x, ok := d.Next(); ok; x, ok = d.Next() {
//	    use(x)
//	}
//
// # Errors
//
// Push and Insert surface growth failures as ErrCapacityOverflow,
// ErrAllocationTooLarge, or ErrAllocationFailed; the vector is left
// completely unchanged by a failed growth. Out-of-range indexes are
// programmer errors and panic, matching slice semantics.
package vec
