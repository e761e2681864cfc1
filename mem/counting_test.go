package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Counting_TracksLiveAndPeak(t *testing.T) {
	c := NewCounting(HeapAllocator{})
	l := Layout{Size: 100, Align: 8}

	b, err := c.Allocate(l)
	require.NoError(t, err)
	require.Equal(t, int64(100), c.Stats().LiveBytes)

	grown := Layout{Size: 250, Align: 8}
	nb, err := c.Grow(b, l, grown)
	require.NoError(t, err)
	require.Equal(t, int64(250), c.Stats().LiveBytes)
	require.Equal(t, int64(250), c.Stats().PeakBytes)

	c.Deallocate(nb, grown)
	st := c.Stats()
	require.Zero(t, st.LiveBytes)
	require.Equal(t, int64(250), st.PeakBytes)
	require.Equal(t, int64(1), st.Allocs)
	require.Equal(t, int64(1), st.Grows)
	require.Equal(t, int64(1), st.Frees)
}

func Test_Counting_FailedRequestsLeaveCountersAlone(t *testing.T) {
	c := NewCounting(NewArena(16))
	_, err := c.Allocate(Layout{Size: 64, Align: 8})
	require.ErrorIs(t, err, ErrArenaFull)
	st := c.Stats()
	require.Zero(t, st.LiveBytes)
	require.Zero(t, st.Allocs)
}
