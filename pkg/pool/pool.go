package pool

import (
	"fmt"
	"log/slog"
	"math"
)

// Slot identifies one element-sized unit of pool storage. Slots are 1-based so
// that the zero value, NilSlot, is the null slot.
type Slot uint32

// NilSlot is the null slot. Allocate(0) returns it and Deallocate ignores it.
const NilSlot Slot = 0

// Allocator is the surface generic containers consume: single-object
// allocation addressed by Slot.
//
// Implementations:
//   - Pool: fixed-capacity arena with a free list
type Allocator[T any] interface {
	// Allocate returns a fresh slot for n == 1 and NilSlot for n == 0.
	Allocate(n int) (Slot, error)

	// Deallocate returns a slot obtained from Allocate.
	Deallocate(s Slot, n int) error

	// At returns the storage behind an issued slot.
	At(s Slot) *T

	// MaxSize is the largest n Allocate accepts.
	MaxSize() int

	// Capacity is the number of slots the allocator can have live at once.
	Capacity() int

	// Close releases the storage.
	Close()
}

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check reports values that contain it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stats is a point-in-time snapshot of pool accounting.
type Stats struct {
	Capacity  int    `json:"capacity"`
	HighWater int    `json:"high_water"`
	Free      int    `json:"free"`
	InUse     int    `json:"in_use"`
	Allocs    uint64 `json:"allocs"`
	Frees     uint64 `json:"frees"`
	Failures  uint64 `json:"failures"`
}

// Pool is a fixed-capacity arena handing out exactly one T-sized slot per call.
//
// Slots below the high-water mark have been issued at least once; slots above
// it have never been touched. Released slots go onto a LIFO free list and are
// reused only after the high-water mark reaches capacity.
//
// A Pool uniquely owns its storage and free list. It must not be copied; share
// it by pointer. It is not safe for concurrent use.
type Pool[T any] struct {
	_ noCopy

	buf       []T
	highWater int
	free      []Slot
	isFree    []bool
	closed    bool

	allocs   uint64
	frees    uint64
	failures uint64

	opts options
}

var _ Allocator[int] = (*Pool[int])(nil)

// New reserves storage for exactly capacity slots. No element is issued yet.
// It panics if capacity is not positive or does not fit in a Slot.
func New[T any](capacity int, opts ...Option) *Pool[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newPool[T](capacity, o)
}

func newPool[T any](capacity int, o options) *Pool[T] {
	if capacity < 1 || uint64(capacity) > math.MaxUint32 {
		panic(fmt.Sprintf("pool: capacity must be in [1, %d], got %d", uint64(math.MaxUint32), capacity))
	}
	return &Pool[T]{
		buf:    make([]T, capacity),
		free:   make([]Slot, 0, capacity),
		isFree: make([]bool, capacity),
		opts:   o,
	}
}

// Rebind creates an independent pool for element type U with its own storage,
// carrying over p's options. A non-positive capacity reuses p's capacity.
func Rebind[U, T any](p *Pool[T], capacity int) *Pool[U] {
	if capacity <= 0 {
		capacity = p.Capacity()
	}
	return newPool[U](capacity, p.opts)
}

// Allocate hands out one slot. n == 0 returns NilSlot with no effect; any n
// other than 0 or 1 fails with ErrInvalidArgument.
func (p *Pool[T]) Allocate(n int) (Slot, error) {
	if n == 0 {
		return NilSlot, nil
	}
	if n < 0 || n > p.MaxSize() {
		return NilSlot, fmt.Errorf("%w: %d", ErrInvalidArgument, n)
	}
	if p.closed {
		return NilSlot, ErrClosed
	}
	if validating {
		p.checkHighWater()
	}

	// Untouched storage first.
	if p.highWater < len(p.buf) {
		p.highWater++
		p.allocs++
		return Slot(p.highWater), nil
	}

	if last := len(p.free) - 1; last >= 0 {
		s := p.free[last]
		p.free = p.free[:last]
		p.isFree[s-1] = false
		p.allocs++
		return s, nil
	}

	p.failures++
	p.opts.logger.Debug("pool exhausted", "capacity", len(p.buf))
	return NilSlot, ErrOutOfMemory
}

// Deallocate returns s to the free list. The slot's storage is left as is.
func (p *Pool[T]) Deallocate(s Slot, n int) error {
	if n < 0 || n > p.MaxSize() {
		return fmt.Errorf("%w: %d", ErrInvalidArgument, n)
	}
	if s == NilSlot {
		return nil
	}
	if p.closed {
		return ErrClosed
	}
	if int(s) > p.highWater {
		return fmt.Errorf("%w: slot %d, high-water %d", ErrInvalidBlock, s, p.highWater)
	}
	if p.isFree[s-1] {
		return fmt.Errorf("%w: slot %d", ErrUseAfterFree, s)
	}

	p.isFree[s-1] = true
	p.free = append(p.free, s)
	p.frees++
	return nil
}

// At returns the storage behind s. It panics on NilSlot or on a slot that was
// never issued, the same way dereferencing a nil pointer would.
func (p *Pool[T]) At(s Slot) *T {
	if s == NilSlot {
		panic("pool: dereference of nil slot")
	}
	if int(s) > p.highWater || p.closed {
		panic(fmt.Sprintf("pool: dereference of unissued slot %d", s))
	}
	return &p.buf[s-1]
}

// MaxSize is always 1: the pool only serves single-object requests.
func (p *Pool[T]) MaxSize() int { return 1 }

// Capacity returns the number of slots reserved at construction.
func (p *Pool[T]) Capacity() int { return len(p.buf) }

// HighWater returns how many distinct slots have ever been issued.
func (p *Pool[T]) HighWater() int { return p.highWater }

// FreeLen returns the length of the free list.
func (p *Pool[T]) FreeLen() int { return len(p.free) }

// InUse returns the number of live slots.
func (p *Pool[T]) InUse() int { return p.highWater - len(p.free) }

// Equal reports whether other is this very pool. Two distinct pools never
// compare equal because neither can release the other's slots.
func (p *Pool[T]) Equal(other *Pool[T]) bool { return p == other }

// Stats returns a snapshot of the pool's accounting.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Capacity:  len(p.buf),
		HighWater: p.highWater,
		Free:      len(p.free),
		InUse:     p.InUse(),
		Allocs:    p.allocs,
		Frees:     p.frees,
		Failures:  p.failures,
	}
}

// Close releases the storage. In validating builds it panics with an error
// wrapping ErrLeak if any issued slot was not returned; that is a defect in
// the client, not a runtime condition. Close is idempotent.
func (p *Pool[T]) Close() {
	if p.closed {
		return
	}
	issued, returned := p.highWater, len(p.free)

	p.closed = true
	p.buf = nil
	p.isFree = nil
	p.free = nil

	if validating && returned != issued {
		p.opts.logger.Error("pool leak", slog.Int("issued", issued), slog.Int("returned", returned))
		panic(fmt.Errorf("%w: %d of %d issued slots never returned", ErrLeak, issued-returned, issued))
	}
}

func (p *Pool[T]) checkHighWater() {
	if p.highWater > len(p.buf) {
		panic("pool: high-water mark exceeds capacity, allocator is corrupt")
	}
}
