// Package mem provides the raw-memory allocation capability consumed by
// the vec container.
//
// # Overview
//
// This package defines the three-operation allocator contract — allocate,
// grow, deallocate — over a described memory layout, plus a small set of
// implementations. Allocation failure is always reported as a returned
// error; no implementation aborts the process.
//
// # Core Types
//
//   - Layout: a size-and-alignment descriptor for a memory request
//   - Block: an allocated region (pointer + byte size)
//   - Allocator: the allocate/grow/deallocate capability
//
// # Implementations
//
// HeapAllocator: the default, backed by the Go heap
//
//   - Over-allocates and shifts to honor alignments beyond the heap's
//   - Deallocate is a no-op; lifetime follows pointer reachability
//
// Arena: a fixed-capacity bump allocator
//
//   - O(1) allocation, no per-block free
//   - Declines with ErrArenaFull when the region is exhausted
//   - Reset reclaims the whole region at once
//
// MmapAllocator: page-granular anonymous mappings (unix only)
//
//   - Allocate and Deallocate map and unmap whole pages
//   - Grow maps a fresh region, copies, and unmaps the old one
//
// CountingAllocator: a wrapper that tracks live bytes, peak bytes, and
// operation counts for any inner allocator. Useful for leak checks in
// tests and for reporting in tools.
//
// # Usage Example
//
//	a := mem.NewCounting(mem.Default)
//	layout, err := mem.LayoutOf[uint64]().Repeat(64)
//	if err != nil {
//	    return err
//	}
//	blk, err := a.Allocate(layout)
//	if err != nil {
//	    return err
//	}
//	// ... use blk.Ptr ...
//	a.Deallocate(blk, layout)
//
// # Limits
//
// No layout may describe more than MaxAllocBytes bytes (half the
// address space). Layout.Repeat enforces this, so callers that build
// array layouts through it never hand an allocator an impossible
// request.
//
// # Thread Safety
//
// HeapAllocator and MmapAllocator are stateless and safe for concurrent
// use. Arena is not thread-safe. CountingAllocator is as safe as the
// allocator it wraps; its counters are atomic.
package mem
