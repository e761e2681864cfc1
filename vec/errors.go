package vec

import "errors"

var (
	// ErrCapacityOverflow indicates growth was requested where no further
	// capacity is representable: a zero-sized-element buffer whose length
	// saturated the maximum count, or count arithmetic past the
	// addressable range.
	ErrCapacityOverflow = errors.New("vec: capacity overflow")

	// ErrAllocationTooLarge indicates the byte size needed for the new
	// capacity exceeds the platform's representable allocation limit.
	ErrAllocationTooLarge = errors.New("vec: allocation too large")

	// ErrAllocationFailed indicates the allocator declined a well-formed
	// request. The allocator's own error is wrapped underneath.
	ErrAllocationFailed = errors.New("vec: allocation failed")
)
