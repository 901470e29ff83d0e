// Package baseline adapts reference FIFOs to the benchmark harness's queue
// constraint so the pool-backed queue can be measured against them.
//
// Every adapter is bounded: Enqueue fails with ErrFull once capacity elements
// are queued, matching the pool-backed queue's out-of-memory behavior.
package baseline

import "errors"

// ErrFull is returned by Enqueue on a queue holding capacity elements.
var ErrFull = errors.New("baseline: queue is full")

func minCapacity(capacity uint64) uint64 {
	// A zero-capacity channel is an unbuffered synchronization primitive,
	// not a zero-capacity buffer; keep every baseline at least one deep.
	if capacity < 1 {
		return 1
	}
	return capacity
}
