package vec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/mem"
)

func mustPush[T any](t *testing.T, v *Vector[T], elems ...T) {
	t.Helper()
	for _, e := range elems {
		require.NoError(t, v.Push(e))
	}
}

func Test_Push_LengthAndReadback(t *testing.T) {
	v := New[int]()
	defer v.Close()

	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(i * 3))
	}
	require.Equal(t, n, v.Len())
	require.False(t, v.IsEmpty())
	for i := 0; i < n; i++ {
		require.Equal(t, i*3, v.At(i))
	}
}

func Test_Pop_LIFOOrder(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1, 2, 3, 4)

	for want := 4; want >= 1; want-- {
		got, ok := v.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.True(t, v.IsEmpty())
}

func Test_Pop_EmptyIsNotPanic(t *testing.T) {
	v := New[string]()
	defer v.Close()
	for i := 0; i < 3; i++ {
		got, ok := v.Pop()
		require.False(t, ok)
		require.Zero(t, got)
	}
}

func Test_Pop_NeverShrinksCapacity(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1, 2, 3, 4, 5)
	before := v.Cap()
	for !v.IsEmpty() {
		v.Pop()
	}
	require.Equal(t, before, v.Cap())
}

func Test_Insert_AtEndEqualsPush(t *testing.T) {
	v := New[int]()
	defer v.Close()
	require.NoError(t, v.Insert(0, 2))
	require.NoError(t, v.Insert(0, 1))
	require.Equal(t, []int{1, 2}, v.Slice())

	require.NoError(t, v.Insert(v.Len(), 3))
	require.Equal(t, []int{1, 2, 3}, v.Slice())
}

func Test_Insert_Remove_RoundTrip(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 10, 20, 30, 40)

	require.NoError(t, v.Insert(2, 25))
	require.Equal(t, []int{10, 20, 25, 30, 40}, v.Slice())

	got := v.Remove(2)
	require.Equal(t, 25, got)
	require.Equal(t, []int{10, 20, 30, 40}, v.Slice())
	require.Equal(t, 4, v.Len())
}

func Test_Remove_ShiftsLeft(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1, 2, 3)
	require.Equal(t, 1, v.Remove(0))
	require.Equal(t, []int{2, 3}, v.Slice())
}

func Test_Insert_OutOfBoundsPanics(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1)
	require.Panics(t, func() { _ = v.Insert(2, 9) })
	require.Panics(t, func() { _ = v.Insert(-1, 9) })
}

func Test_Remove_OutOfBoundsPanics(t *testing.T) {
	v := New[int]()
	defer v.Close()
	require.Panics(t, func() { v.Remove(0) })
	mustPush(t, v, 1)
	require.Panics(t, func() { v.Remove(1) })
	require.Panics(t, func() { v.Remove(-1) })
}

func Test_At_Set_Bounds(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 7)
	v.Set(0, 8)
	require.Equal(t, 8, v.At(0))
	require.Panics(t, func() { v.At(1) })
	require.Panics(t, func() { v.Set(1, 0) })
}

func Test_Slice_IsWritableView(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1, 2, 3)

	s := v.Slice()
	require.Len(t, s, 3)
	s[1] = 99
	require.Equal(t, 99, v.At(1))
}

func Test_Slice_EmptyVector(t *testing.T) {
	v := New[int]()
	defer v.Close()
	require.Empty(t, v.Slice())
}

func Test_Clear_KeepsCapacity(t *testing.T) {
	v := New[int]()
	defer v.Close()
	mustPush(t, v, 1, 2, 3)
	cap := v.Cap()
	v.Clear()
	require.Zero(t, v.Len())
	require.Equal(t, cap, v.Cap())
	mustPush(t, v, 9)
	require.Equal(t, 9, v.At(0))
}

func Test_ManyAllocations_GrowthScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("10M-element scenario")
	}
	v := New[int]()
	defer v.Close()

	const n = 10_000_000
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(i))
	}
	require.Equal(t, n, v.Len())
	require.Greater(t, v.Cap(), n)
	require.Equal(t, 999_999, v.At(999_999))
}

func Test_FailedGrow_LeavesVectorUnchanged(t *testing.T) {
	// An arena sized for exactly the first allocation: the second
	// growth has nowhere to go.
	elemSize := int(mem.LayoutOf[int]().Size)
	v := NewIn[int](mem.NewArena(firstCapacity * elemSize))
	defer v.Close()

	mustPush(t, v, 0, 1, 2, 3)
	require.Equal(t, firstCapacity, v.Cap())

	err := v.Push(4)
	require.ErrorIs(t, err, ErrAllocationFailed)
	require.ErrorIs(t, err, mem.ErrArenaFull, "allocator's own error stays in the chain")
	require.Equal(t, 4, v.Len())
	require.Equal(t, firstCapacity, v.Cap())
	require.Equal(t, []int{0, 1, 2, 3}, v.Slice())

	err = v.Insert(1, 9)
	require.ErrorIs(t, err, ErrAllocationFailed)
	require.Equal(t, []int{0, 1, 2, 3}, v.Slice())
}

func Test_Close_ReleasesBlockExactlyOnce(t *testing.T) {
	c := mem.NewCounting(mem.HeapAllocator{})
	v := NewIn[uint64](c)
	for i := 0; i < 100; i++ {
		require.NoError(t, v.Push(uint64(i)))
	}
	require.Positive(t, c.Stats().LiveBytes)

	v.Close()
	st := c.Stats()
	require.Zero(t, st.LiveBytes)
	require.Equal(t, int64(1), st.Frees)

	v.Close() // no-op
	require.Equal(t, int64(1), c.Stats().Frees)
}

func Test_UseAfterClose_Panics(t *testing.T) {
	v := New[int]()
	v.Close()
	require.Panics(t, func() { _ = v.Push(1) })
}

func Test_Vector_OnMmapAllocator(t *testing.T) {
	m, err := mem.NewMmap()
	if err != nil {
		t.Skip("no mmap on this platform")
	}
	v := NewIn[uint32](m)
	defer v.Close()
	for i := 0; i < 50_000; i++ {
		require.NoError(t, v.Push(uint32(i)))
	}
	require.Equal(t, 50_000, v.Len())
	require.Equal(t, uint32(12_345), v.At(12_345))
}

func Test_ZeroSized_PushPopAndCapacity(t *testing.T) {
	v := New[struct{}]()
	defer v.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, v.Push(struct{}{}))
	}
	require.Equal(t, 10, v.Len())
	require.Greater(t, v.Cap(), 10)

	_, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 9, v.Len())

	require.NoError(t, v.Insert(4, struct{}{}))
	_ = v.Remove(0)
	require.Equal(t, 9, v.Len())
}

func Test_ZeroSized_WideAlignmentElementType(t *testing.T) {
	// [0]uint64 consumes no storage but carries uint64 alignment; the
	// shared degenerate address must satisfy it.
	require.Zero(t, uintptr(unsafe.Pointer(&zeroBase))%unsafe.Alignof([0]uint64{}))

	v := New[[0]uint64]()
	defer v.Close()
	for i := 0; i < 4; i++ {
		require.NoError(t, v.Push([0]uint64{}))
	}
	require.Equal(t, 4, v.Len())
	require.Len(t, v.Slice(), 4)

	d := v.Drain()
	defer d.Close()
	count := 0
	for {
		if _, ok := d.Next(); !ok {
			break
		}
		count++
	}
	require.Equal(t, 4, count)
	require.Zero(t, v.Len())
}
