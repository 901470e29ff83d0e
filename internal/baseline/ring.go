package baseline

import (
	"github.com/eapache/queue"
)

// Ring is a FIFO on eapache/queue's growable ring buffer, capped at capacity.
type Ring[T any] struct {
	q        *queue.Queue
	capacity uint64
}

func NewRing[T any](capacity uint64) *Ring[T] {
	return &Ring[T]{q: queue.New(), capacity: minCapacity(capacity)}
}

func (r *Ring[T]) Enqueue(val T) error {
	if uint64(r.q.Length()) >= r.capacity {
		return ErrFull
	}
	r.q.Add(val)
	return nil
}

func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.q.Length() == 0 {
		return zero, false
	}
	return r.q.Remove().(T), true
}

func (r *Ring[T]) FreeSlots() uint64 { return r.capacity - uint64(r.q.Length()) }

func (r *Ring[T]) UsedSlots() uint64 { return uint64(r.q.Length()) }
