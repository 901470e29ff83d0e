package testbench

import (
	"context"
	"time"

	"github.com/i5heu/GoPoolQueue/internal/queue"
)

// Config describes one workload shape. The queues under test are
// single-threaded, so there are no producer or consumer counts: one goroutine
// fills the queue by BatchSize elements and drains it again.
type Config struct {
	// Capacity is the queue capacity handed to the constructor.
	Capacity uint64
	// BatchSize is how many elements are enqueued before draining.
	BatchSize int
	// EditEvery performs one positional edit every EditEvery enqueues on
	// queues that implement queue.Editor. Zero disables edits.
	EditEvery int
}

// Result is what one timed run measured.
type Result struct {
	Produced int64
	Consumed int64
	Edits    int64
	Rejected int64
	Elapsed  time.Duration
}

// checkEvery bounds how many operations run between deadline checks.
const checkEvery = 256

// RunTimedTest fills and drains q in batches until testDuration expires,
// counting every enqueue, dequeue and edit. Once the context expires the
// remaining elements are drained so produced and consumed match.
func RunTimedTest[T any, Q queue.QueueValidationInterface[T]](
	q Q,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) Result {

	// Create a context that will cancel after testDuration.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	var res Result
	editor, canEdit := any(q).(queue.Editor[T])
	if cfg.EditEvery <= 0 {
		canEdit = false
	}
	batch := cfg.BatchSize
	if batch < 1 {
		batch = 1
	}

	start := time.Now()
	msgIndex := 0
	ops := 0

	for ctx.Err() == nil {
		for i := 0; i < batch; i++ {
			if err := q.Enqueue(valueGenerator(msgIndex)); err != nil {
				// Full: drain and start a new batch.
				res.Rejected++
				break
			}
			msgIndex++
			res.Produced++

			if canEdit && msgIndex%cfg.EditEvery == 0 {
				pos := msgIndex % int(q.UsedSlots())
				if err := editor.Edit(pos, valueGenerator(-msgIndex)); err == nil {
					res.Edits++
				} else {
					res.Rejected++
				}
			}

			ops++
			if ops%checkEvery == 0 && ctx.Err() != nil {
				break
			}
		}

		for {
			if _, ok := q.Dequeue(); !ok {
				break
			}
			res.Consumed++
		}
	}

	res.Elapsed = time.Since(start)
	return res
}

// Throughput returns consumed elements per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Consumed) / r.Elapsed.Seconds()
}

// NsPerOp returns nanoseconds per enqueue, dequeue or edit.
func (r Result) NsPerOp() float64 {
	ops := r.Produced + r.Consumed + r.Edits
	if ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(ops)
}
