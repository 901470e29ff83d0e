package queue

// QueueValidationInterface is the set of methods the bench harness drives.
// It is used as a type constraint by testbench and as the element type of the
// implementation registry in cmd/bench.
type QueueValidationInterface[T any] interface {
	// Enqueue adds an element to the queue. It fails instead of blocking when
	// the queue is full.
	Enqueue(T) error

	// Dequeue removes and returns the oldest element.
	// If the queue is empty (no element is available), it should return a empty T and false, otherwise true.
	Dequeue() (T, bool)

	// FreeSlots returns how many more elements can be enqueued before the queue is full.
	FreeSlots() uint64

	// UsedSlots returns how many elements are currently queued.
	UsedSlots() uint64
}

// Editor is implemented by queues that can insert and remove at an arbitrary
// position. Edit inserts v before position pos and removes it again.
type Editor[T any] interface {
	Edit(pos int, v T) error
}

// Closer is implemented by queues that hold resources which must be released
// explicitly, such as a node pool with a leak check.
type Closer interface {
	Close()
}
