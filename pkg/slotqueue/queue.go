package slotqueue

import (
	"fmt"
	"iter"

	"github.com/i5heu/GoPoolQueue/pkg/pool"
)

// node holds one value and owns the node at next, if any.
type node[T any] struct {
	value T
	next  pool.Slot
}

// Queue is a FIFO backed by a fixed-capacity node pool.
type Queue[T any] struct {
	alloc *pool.Pool[node[T]]
	head  pool.Slot // owning
	tail  pool.Slot // non-owning, NilSlot iff the queue is empty
	size  int
}

// New creates a queue that can hold up to capacity elements.
func New[T any](capacity int, opts ...pool.Option) *Queue[T] {
	return &Queue[T]{alloc: pool.New[node[T]](capacity, opts...)}
}

// NewWithAllocator creates a queue whose node pool is rebound from base: same
// capacity and options, separate storage. base itself is not used for nodes.
func NewWithAllocator[T any](base *pool.Pool[T]) *Queue[T] {
	return &Queue[T]{alloc: pool.Rebind[node[T]](base, 0)}
}

// Push appends v. It fails with pool.ErrOutOfMemory when the pool is
// exhausted, leaving the queue unchanged.
func (q *Queue[T]) Push(v T) error {
	s, err := q.construct(v, pool.NilSlot)
	if err != nil {
		return err
	}
	if q.tail != pool.NilSlot {
		q.alloc.At(q.tail).next = s
	} else {
		q.head = s
	}
	q.tail = s
	q.size++
	return nil
}

// Pop removes the head element.
func (q *Queue[T]) Pop() error {
	if q.size == 0 {
		return ErrEmpty
	}
	detached := q.head
	q.head = q.alloc.At(detached).next
	if q.head == pool.NilSlot {
		q.tail = pool.NilSlot
	}
	q.destroy(detached)
	q.size--
	return nil
}

// Top returns a pointer to the head element. The pointer is valid until the
// element is removed.
func (q *Queue[T]) Top() (*T, error) {
	if q.size == 0 {
		return nil, ErrEmpty
	}
	return &q.alloc.At(q.head).value, nil
}

// Size returns the number of elements.
func (q *Queue[T]) Size() int { return q.size }

// Capacity returns the maximum number of elements the queue can hold.
func (q *Queue[T]) Capacity() int { return q.alloc.Capacity() }

// Begin returns a cursor at the head link.
func (q *Queue[T]) Begin() Iterator[T] {
	return Iterator[T]{q: q, owner: pool.NilSlot}
}

// End returns the cursor at the link that owns nothing. It walks the chain.
func (q *Queue[T]) End() Iterator[T] {
	it := q.Begin()
	for !it.AtEnd() {
		it.owner = *it.cell()
	}
	return it
}

// Insert splices a new node holding v into its link cell. The new node takes
// over the subchain the cell owned, so afterwards it designates the new node.
// Inserting at End appends and becomes the new tail.
func (q *Queue[T]) Insert(it Iterator[T], v T) error {
	if it.q != q {
		return ErrForeignIterator
	}
	cell := it.cell()
	next := *cell
	s, err := q.construct(v, next)
	if err != nil {
		return err
	}
	*cell = s
	if next == pool.NilSlot {
		q.tail = s
	}
	q.size++
	return nil
}

// Erase removes the node designated by it and relinks its successor into its
// cell. After Erase, it designates that successor.
func (q *Queue[T]) Erase(it Iterator[T]) error {
	if it.q != q {
		return ErrForeignIterator
	}
	cell := it.cell()
	detached := *cell
	if detached == pool.NilSlot {
		return ErrOutOfRange
	}
	next := q.alloc.At(detached).next
	*cell = next
	if next == pool.NilSlot {
		q.tail = it.owner
	}
	q.destroy(detached)
	q.size--
	return nil
}

// All yields the elements from head to tail. The sequence may be ranged over
// repeatedly; the queue must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := q.head; s != pool.NilSlot; {
			n := q.alloc.At(s)
			if !yield(n.value) {
				return
			}
			s = n.next
		}
	}
}

// Values returns a copy of the elements from head to tail.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

// Stats returns the node pool's accounting.
func (q *Queue[T]) Stats() pool.Stats { return q.alloc.Stats() }

// Close destroys every node and closes the node pool, which panics if a slot
// leaked. The queue is empty and unusable afterwards.
func (q *Queue[T]) Close() {
	for s := q.head; s != pool.NilSlot; {
		next := q.alloc.At(s).next
		q.destroy(s)
		s = next
	}
	q.head, q.tail, q.size = pool.NilSlot, pool.NilSlot, 0
	q.alloc.Close()
}

// Enqueue is Push under the benchmark harness's name.
func (q *Queue[T]) Enqueue(v T) error { return q.Push(v) }

// Dequeue removes and returns the head element, or reports false when empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	top, err := q.Top()
	if err != nil {
		return zero, false
	}
	v := *top
	if err := q.Pop(); err != nil {
		return zero, false
	}
	return v, true
}

// FreeSlots returns how many more elements fit.
func (q *Queue[T]) FreeSlots() uint64 { return uint64(q.alloc.Capacity() - q.size) }

// UsedSlots returns the number of queued elements.
func (q *Queue[T]) UsedSlots() uint64 { return uint64(q.size) }

func (q *Queue[T]) construct(v T, next pool.Slot) (pool.Slot, error) {
	s, err := q.alloc.Allocate(1)
	if err != nil {
		return pool.NilSlot, err
	}
	*q.alloc.At(s) = node[T]{value: v, next: next}
	return s, nil
}

// destroy zeroes the node so the pool does not pin its value, then returns the slot.
func (q *Queue[T]) destroy(s pool.Slot) {
	*q.alloc.At(s) = node[T]{}
	if err := q.alloc.Deallocate(s, 1); err != nil {
		panic(fmt.Sprintf("slotqueue: chain corrupt: %v", err))
	}
}
