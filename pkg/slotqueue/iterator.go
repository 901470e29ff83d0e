package slotqueue

import "github.com/i5heu/GoPoolQueue/pkg/pool"

// Iterator is a forward cursor over the link cells of a Queue.
//
// owner is the slot of the node whose next field is the cell, or NilSlot for
// the queue's head link. The cell, not the node it owns, is what the cursor
// designates; that is what lets Insert and Erase splice without back pointers.
//
// The zero Iterator belongs to no queue and behaves as an end cursor.
type Iterator[T any] struct {
	q     *Queue[T]
	owner pool.Slot
}

func (it Iterator[T]) cell() *pool.Slot {
	if it.q == nil {
		detached := pool.NilSlot
		return &detached
	}
	if it.owner == pool.NilSlot {
		return &it.q.head
	}
	return &it.q.alloc.At(it.owner).next
}

// AtEnd reports whether the cursor's cell owns nothing.
func (it Iterator[T]) AtEnd() bool {
	return *it.cell() == pool.NilSlot
}

// Next advances to the following link cell.
func (it *Iterator[T]) Next() error {
	s := *it.cell()
	if s == pool.NilSlot {
		return ErrOutOfRange
	}
	it.owner = s
	return nil
}

// Value returns a pointer to the element of the designated node.
func (it Iterator[T]) Value() (*T, error) {
	s := *it.cell()
	if s == pool.NilSlot {
		return nil, ErrOutOfRange
	}
	return &it.q.alloc.At(s).value, nil
}

// Equal reports whether both cursors reference the same link cell.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.q == other.q && it.owner == other.owner
}
