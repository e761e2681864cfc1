package mem

import "sync/atomic"

// CountingAllocator wraps an Allocator and tracks bytes and operation
// counts. Counters are atomic so a shared wrapper stays consistent
// even when the inner allocator is used from several goroutines.
type CountingAllocator struct {
	inner Allocator

	live   atomic.Int64
	peak   atomic.Int64
	allocs atomic.Int64
	grows  atomic.Int64
	frees  atomic.Int64
}

// Stats is a point-in-time snapshot of a CountingAllocator's counters.
type Stats struct {
	LiveBytes int64
	PeakBytes int64
	Allocs    int64
	Grows     int64
	Frees     int64
}

// NewCounting wraps inner with byte and operation accounting.
// A nil inner wraps the Default allocator.
func NewCounting(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = Default
	}
	return &CountingAllocator{inner: inner}
}

func (c *CountingAllocator) Allocate(layout Layout) (Block, error) {
	b, err := c.inner.Allocate(layout)
	if err != nil {
		return Block{}, err
	}
	c.allocs.Add(1)
	c.account(int64(layout.Size))
	return b, nil
}

func (c *CountingAllocator) Grow(b Block, oldLayout, newLayout Layout) (Block, error) {
	nb, err := c.inner.Grow(b, oldLayout, newLayout)
	if err != nil {
		return Block{}, err
	}
	c.grows.Add(1)
	c.account(int64(newLayout.Size) - int64(oldLayout.Size))
	return nb, nil
}

func (c *CountingAllocator) Deallocate(b Block, layout Layout) {
	c.inner.Deallocate(b, layout)
	c.frees.Add(1)
	c.live.Add(-int64(layout.Size))
}

// Stats returns a snapshot of the current counters.
func (c *CountingAllocator) Stats() Stats {
	return Stats{
		LiveBytes: c.live.Load(),
		PeakBytes: c.peak.Load(),
		Allocs:    c.allocs.Load(),
		Grows:     c.grows.Load(),
		Frees:     c.frees.Load(),
	}
}

func (c *CountingAllocator) account(delta int64) {
	live := c.live.Add(delta)
	for {
		peak := c.peak.Load()
		if live <= peak || c.peak.CompareAndSwap(peak, live) {
			return
		}
	}
}

var _ Allocator = (*CountingAllocator)(nil)
