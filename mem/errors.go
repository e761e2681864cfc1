package mem

import "errors"

var (
	// ErrSizeOverflow indicates a layout would exceed the addressable range.
	ErrSizeOverflow = errors.New("mem: layout size exceeds addressable range")

	// ErrArenaFull indicates the arena has no room left for the request.
	ErrArenaFull = errors.New("mem: arena full")

	// ErrBadAlign indicates an alignment that is zero or not a power of two.
	ErrBadAlign = errors.New("mem: alignment must be a power of two")

	// ErrUnsupported indicates the allocator is not available on this platform.
	ErrUnsupported = errors.New("mem: allocator not supported on this platform")
)
