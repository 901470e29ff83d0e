package pool

import "errors"

var (
	// ErrOutOfMemory indicates that every slot is live and the free list is empty.
	ErrOutOfMemory = errors.New("pool: out of memory")

	// ErrInvalidArgument indicates a block size other than 0 or 1.
	ErrInvalidArgument = errors.New("pool: bad block size")

	// ErrInvalidBlock indicates a slot that was never issued by this pool.
	ErrInvalidBlock = errors.New("pool: unknown block")

	// ErrUseAfterFree indicates a slot that is already on the free list.
	// Only repeated frees of a still-free slot are caught; a stale slot freed
	// after it was handed out again is indistinguishable from a live one.
	ErrUseAfterFree = errors.New("pool: use after free detected")

	// ErrClosed indicates an operation on a pool whose storage was released.
	ErrClosed = errors.New("pool: closed")

	// ErrLeak is the panic payload of Close when issued slots were not returned.
	ErrLeak = errors.New("pool: memory leak detected")
)
