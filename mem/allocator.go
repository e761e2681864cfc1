package mem

import "unsafe"

// Block is an allocated memory region. The zero Block means nothing is
// allocated. Size is the usable byte size, which may be smaller than
// what the allocator reserved internally.
type Block struct {
	Ptr  unsafe.Pointer
	Size uintptr
}

// Allocator defines the raw-memory capability: allocate, grow, and
// deallocate a block described by a Layout.
//
// Implementations:
//   - HeapAllocator: Go-heap backed default
//   - Arena: fixed-capacity bump allocation
//   - MmapAllocator: anonymous page mappings (unix)
//   - CountingAllocator: accounting wrapper around any of the above
//
// All failures are returned errors; implementations never terminate
// the process on an unsatisfiable request.
type Allocator interface {
	// Allocate reserves a fresh block for the given layout.
	Allocate(layout Layout) (Block, error)

	// Grow replaces a block allocated with oldLayout by one satisfying
	// newLayout, preserving the first oldLayout.Size bytes. On success
	// the old block must no longer be used; on failure it remains
	// valid and untouched.
	Grow(b Block, oldLayout, newLayout Layout) (Block, error)

	// Deallocate releases a block previously obtained from Allocate or
	// Grow with the layout it currently holds.
	Deallocate(b Block, layout Layout)
}

// Default is the process-wide general-purpose allocator used when a
// container is constructed without an explicit one.
var Default Allocator = HeapAllocator{}
