package baseline

import "container/list"

// List is a FIFO on container/list: one heap node per element, doubly linked.
type List[T any] struct {
	l        *list.List
	capacity uint64
}

func NewList[T any](capacity uint64) *List[T] {
	return &List[T]{l: list.New(), capacity: minCapacity(capacity)}
}

func (q *List[T]) Enqueue(val T) error {
	if uint64(q.l.Len()) >= q.capacity {
		return ErrFull
	}
	q.l.PushBack(val)
	return nil
}

func (q *List[T]) Dequeue() (T, bool) {
	var zero T
	front := q.l.Front()
	if front == nil {
		return zero, false
	}
	return q.l.Remove(front).(T), true
}

// Edit inserts v before the element at pos and removes it again.
func (q *List[T]) Edit(pos int, v T) error {
	if uint64(q.l.Len()) >= q.capacity {
		return ErrFull
	}
	e := q.l.Front()
	for i := 0; i < pos && e != nil; i++ {
		e = e.Next()
	}
	var inserted *list.Element
	if e == nil {
		inserted = q.l.PushBack(v)
	} else {
		inserted = q.l.InsertBefore(v, e)
	}
	q.l.Remove(inserted)
	return nil
}

func (q *List[T]) FreeSlots() uint64 { return q.capacity - uint64(q.l.Len()) }

func (q *List[T]) UsedSlots() uint64 { return uint64(q.l.Len()) }
