package slotqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginEqualsEndWhenEmpty(t *testing.T) {
	q := newQueue(t, 2)

	assert.True(t, q.Begin().Equal(q.End()))
	assert.True(t, q.Begin().AtEnd())
}

func TestNextPastEnd(t *testing.T) {
	q := newQueue(t, 4, 1)

	it := q.End()
	before := it
	require.ErrorIs(t, it.Next(), ErrOutOfRange)
	assert.True(t, it.Equal(before))

	_, err := it.Value()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestZeroIteratorIsEnd(t *testing.T) {
	var it Iterator[int]

	assert.True(t, it.AtEnd())
	require.ErrorIs(t, it.Next(), ErrOutOfRange)
	_, err := it.Value()
	require.ErrorIs(t, err, ErrOutOfRange)

	q := newQueue(t, 2, 1)
	assert.ErrorIs(t, q.Insert(it, 2), ErrForeignIterator)
	assert.ErrorIs(t, q.Erase(it), ErrForeignIterator)
	assert.False(t, it.Equal(q.End()))
	assert.Equal(t, []int{1}, q.Values())
}

func TestEndIsReachedFromBegin(t *testing.T) {
	q := newQueue(t, 8, 1, 2, 3)

	it := q.Begin()
	steps := 0
	for !it.AtEnd() {
		require.NoError(t, it.Next())
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.True(t, it.Equal(q.End()))
}

func TestIteratorsOfDifferentQueuesDiffer(t *testing.T) {
	a := newQueue(t, 2)
	b := newQueue(t, 2)

	assert.False(t, a.Begin().Equal(b.Begin()))
}

func TestValueIsMutable(t *testing.T) {
	q := newQueue(t, 4, 1, 2, 3)

	it := q.Begin()
	require.NoError(t, it.Next())
	v, err := it.Value()
	require.NoError(t, err)
	*v = 20

	assert.Equal(t, []int{1, 20, 3}, q.Values())
}

func TestEraseKeepsCursorOnSuccessor(t *testing.T) {
	q := newQueue(t, 8, 1, 2, 3, 4)

	it := q.Begin()
	require.NoError(t, it.Next())
	require.NoError(t, q.Erase(it))
	require.NoError(t, q.Erase(it))

	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 4, *v)
	assert.Equal(t, []int{1, 4}, q.Values())
	assert.Equal(t, 2, q.Size())
}

func TestSpliceChurnKeepsSizeAndSlots(t *testing.T) {
	const capacity = 16
	q := newQueue(t, capacity)

	for i := 0; i < capacity/2; i++ {
		require.NoError(t, q.Push(i))
	}
	for round := 0; round < 100; round++ {
		it := q.Begin()
		for step := 0; step < round%(capacity/2); step++ {
			require.NoError(t, it.Next())
		}
		require.NoError(t, q.Insert(it, -round))
		require.NoError(t, q.Erase(it))
	}

	assert.Equal(t, capacity/2, q.Size())
	assert.Len(t, q.Values(), capacity/2)
	assert.Equal(t, capacity/2, q.Stats().InUse)
}
