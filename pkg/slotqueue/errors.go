package slotqueue

import "errors"

var (
	// ErrEmpty is returned by Pop and Top on an empty queue.
	ErrEmpty = errors.New("slotqueue: queue is empty")

	// ErrOutOfRange is returned when advancing, reading or erasing at the end cursor.
	ErrOutOfRange = errors.New("slotqueue: iterator out of range")

	// ErrForeignIterator is returned when an iterator from another queue is used.
	ErrForeignIterator = errors.New("slotqueue: iterator belongs to another queue")
)
