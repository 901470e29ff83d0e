package baseline

import (
	"github.com/gammazero/deque"
)

// Deque is a FIFO on gammazero/deque, capped at capacity. It supports Edit.
type Deque[T any] struct {
	d        *deque.Deque[T]
	capacity uint64
}

func NewDeque[T any](capacity uint64) *Deque[T] {
	c := minCapacity(capacity)
	return &Deque[T]{d: deque.New[T](int(c)), capacity: c}
}

func (q *Deque[T]) Enqueue(val T) error {
	if uint64(q.d.Len()) >= q.capacity {
		return ErrFull
	}
	q.d.PushBack(val)
	return nil
}

func (q *Deque[T]) Dequeue() (T, bool) {
	var zero T
	if q.d.Len() == 0 {
		return zero, false
	}
	return q.d.PopFront(), true
}

// Edit inserts v at pos and removes it again.
func (q *Deque[T]) Edit(pos int, v T) error {
	if uint64(q.d.Len()) >= q.capacity {
		return ErrFull
	}
	if pos > q.d.Len() {
		pos = q.d.Len()
	}
	q.d.Insert(pos, v)
	q.d.Remove(pos)
	return nil
}

func (q *Deque[T]) FreeSlots() uint64 { return q.capacity - uint64(q.d.Len()) }

func (q *Deque[T]) UsedSlots() uint64 { return uint64(q.d.Len()) }
