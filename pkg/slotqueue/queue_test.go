package slotqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoPoolQueue/pkg/pool"
)

func newQueue(t *testing.T, capacity int, values ...int) *Queue[int] {
	t.Helper()
	q := New[int](capacity)
	for _, v := range values {
		require.NoError(t, q.Push(v))
	}
	t.Cleanup(q.Close)
	return q
}

func TestPushTopPop(t *testing.T) {
	q := newQueue(t, 8, 1, 2)

	top, err := q.Top()
	require.NoError(t, err)
	assert.Equal(t, 1, *top)

	require.NoError(t, q.Pop())
	top, err = q.Top()
	require.NoError(t, err)
	assert.Equal(t, 2, *top)
	assert.Equal(t, 1, q.Size())
}

func TestTopIsMutable(t *testing.T) {
	q := newQueue(t, 4, 1, 2)

	top, err := q.Top()
	require.NoError(t, err)
	*top = 10
	assert.Equal(t, []int{10, 2}, q.Values())
}

func TestEmptyQueue(t *testing.T) {
	q := newQueue(t, 4)

	require.ErrorIs(t, q.Pop(), ErrEmpty)
	_, err := q.Top()
	require.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, q.Size())

	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestPushPopReturnsEverySlot(t *testing.T) {
	const n = 32
	q := newQueue(t, n)

	for i := 0; i < n; i++ {
		require.NoError(t, q.Push(i))
	}
	for i := 0; i < n; i++ {
		require.NoError(t, q.Pop())
	}
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, n, q.Stats().Free)
	assert.Equal(t, n, q.Stats().HighWater)
}

func TestPushPastCapacity(t *testing.T) {
	q := newQueue(t, 3, 1, 2, 3)

	err := q.Push(4)
	require.ErrorIs(t, err, pool.ErrOutOfMemory)
	assert.Equal(t, 3, q.Size())
	assert.Equal(t, []int{1, 2, 3}, q.Values())
	assert.Equal(t, uint64(0), q.FreeSlots())
}

func TestReuseAfterDrain(t *testing.T) {
	q := newQueue(t, 2)

	for round := 0; round < 5; round++ {
		require.NoError(t, q.Push(round))
		require.NoError(t, q.Push(round+100))
		assert.Equal(t, []int{round, round + 100}, q.Values())
		require.NoError(t, q.Pop())
		require.NoError(t, q.Pop())
	}
	assert.Equal(t, 2, q.Stats().HighWater)
}

func TestPushAfterEmptyingStartsFresh(t *testing.T) {
	q := newQueue(t, 4, 1)
	require.NoError(t, q.Pop())

	require.NoError(t, q.Push(2))
	require.NoError(t, q.Push(3))
	assert.Equal(t, []int{2, 3}, q.Values())
}

func TestIterationOrder(t *testing.T) {
	q := newQueue(t, 8, 1, 2, 3, 4, 5)

	var got []int
	for it := q.Begin(); !it.Equal(q.End()); {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, *v)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	// Traversal is repeatable.
	assert.Equal(t, got, q.Values())
	assert.Equal(t, got, q.Values())
}

func TestAllStopsEarly(t *testing.T) {
	q := newQueue(t, 8, 1, 2, 3, 4)

	var got []int
	for v := range q.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestInsertEraseRoundTrip(t *testing.T) {
	q := newQueue(t, 8, 1, 2)

	require.NoError(t, q.Insert(q.Begin(), 0))
	assert.Equal(t, []int{0, 1, 2}, q.Values())
	assert.Equal(t, 3, q.Size())

	require.NoError(t, q.Erase(q.Begin()))
	assert.Equal(t, []int{1, 2}, q.Values())
	assert.Equal(t, 2, q.Size())
}

func TestInsertMiddle(t *testing.T) {
	q := newQueue(t, 8, 1, 3)

	it := q.Begin()
	require.NoError(t, it.Next())
	require.NoError(t, q.Insert(it, 2))

	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, *v)
	assert.Equal(t, []int{1, 2, 3}, q.Values())
}

func TestInsertAtEndBecomesTail(t *testing.T) {
	q := newQueue(t, 8, 1, 2)

	require.NoError(t, q.Insert(q.End(), 3))
	require.NoError(t, q.Push(4))
	assert.Equal(t, []int{1, 2, 3, 4}, q.Values())
	assert.Equal(t, 4, q.Size())
}

func TestInsertIntoEmpty(t *testing.T) {
	q := newQueue(t, 4)

	require.NoError(t, q.Insert(q.End(), 1))
	require.NoError(t, q.Push(2))
	assert.Equal(t, []int{1, 2}, q.Values())
}

func TestEraseTailThenPush(t *testing.T) {
	q := newQueue(t, 8, 1, 2, 3)

	it := q.Begin()
	require.NoError(t, it.Next())
	require.NoError(t, it.Next())
	require.NoError(t, q.Erase(it))
	assert.True(t, it.AtEnd())

	require.NoError(t, q.Push(4))
	assert.Equal(t, []int{1, 2, 4}, q.Values())
}

func TestEraseOnlyElement(t *testing.T) {
	q := newQueue(t, 2, 1)

	require.NoError(t, q.Erase(q.Begin()))
	assert.Equal(t, 0, q.Size())
	_, err := q.Top()
	require.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, q.Push(5))
	assert.Equal(t, []int{5}, q.Values())
}

func TestEraseAtEnd(t *testing.T) {
	q := newQueue(t, 4, 1)

	require.ErrorIs(t, q.Erase(q.End()), ErrOutOfRange)
	assert.Equal(t, 1, q.Size())
}

func TestInsertOutOfMemoryLeavesQueue(t *testing.T) {
	q := newQueue(t, 2, 1, 2)

	err := q.Insert(q.Begin(), 0)
	require.ErrorIs(t, err, pool.ErrOutOfMemory)
	assert.Equal(t, []int{1, 2}, q.Values())
	assert.Equal(t, 2, q.Size())
}

func TestForeignIterator(t *testing.T) {
	a := newQueue(t, 2, 1)
	b := newQueue(t, 2, 1)

	require.ErrorIs(t, a.Insert(b.Begin(), 0), ErrForeignIterator)
	require.ErrorIs(t, a.Erase(b.Begin()), ErrForeignIterator)
	assert.Equal(t, 1, a.Size())
}

func TestDequeue(t *testing.T) {
	q := newQueue(t, 4, 7, 8)

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, uint64(1), q.UsedSlots())
	assert.Equal(t, uint64(3), q.FreeSlots())
	assert.Equal(t, 4, q.Capacity())
}

func TestCloseReturnsLiveNodes(t *testing.T) {
	q := New[string](4)
	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))
	require.NoError(t, q.Insert(q.Begin(), "z"))

	assert.NotPanics(t, q.Close)
	assert.Equal(t, 0, q.Size())
}

func TestNewWithAllocator(t *testing.T) {
	base := pool.New[int](16)
	defer base.Close()

	q := NewWithAllocator(base)
	defer q.Close()

	require.NoError(t, q.Push(1))
	assert.Equal(t, 16, q.Capacity())
	assert.Equal(t, 0, base.HighWater())
}

func TestDestroyedNodesAreZeroed(t *testing.T) {
	type payload struct{ buf []byte }
	q := New[payload](2)
	defer q.Close()

	require.NoError(t, q.Push(payload{buf: make([]byte, 8)}))
	head := q.head
	require.NoError(t, q.Pop())

	assert.Nil(t, q.alloc.At(head).value.buf)
}

func BenchmarkPushPop(b *testing.B) {
	q := New[int](1024)
	defer q.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := q.Push(i); err != nil {
			b.Fatal(err)
		}
		if err := q.Pop(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertEraseBegin(b *testing.B) {
	q := New[int](1024)
	defer q.Close()
	for i := 0; i < 512; i++ {
		if err := q.Push(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := q.Begin()
		if err := q.Insert(it, i); err != nil {
			b.Fatal(err)
		}
		if err := q.Erase(it); err != nil {
			b.Fatal(err)
		}
	}
}
