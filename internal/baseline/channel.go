package baseline

// Channel is a FIFO on a buffered Go channel.
type Channel[T any] struct {
	ch chan T
}

func NewChannel[T any](capacity uint64) *Channel[T] {
	return &Channel[T]{
		ch: make(chan T, minCapacity(capacity)),
	}
}

func (q *Channel[T]) Enqueue(val T) error {
	select {
	case q.ch <- val:
		return nil
	default:
		return ErrFull
	}
}

func (q *Channel[T]) Dequeue() (val T, ok bool) {
	select {
	case val = <-q.ch:
		return val, true
	default:
		return val, false
	}
}

func (q *Channel[T]) FreeSlots() uint64 {
	return uint64(cap(q.ch) - len(q.ch))
}

func (q *Channel[T]) UsedSlots() uint64 {
	return uint64(len(q.ch))
}
