package baseline

import (
	"github.com/i5heu/GoPoolQueue/pkg/pool"
	"github.com/i5heu/GoPoolQueue/pkg/slotqueue"
)

// Pooled exposes slotqueue.Queue to the harness and adds positional edits
// through its slot cursors.
type Pooled[T any] struct {
	*slotqueue.Queue[T]
}

func NewPooled[T any](capacity uint64, opts ...pool.Option) *Pooled[T] {
	return &Pooled[T]{Queue: slotqueue.New[T](int(minCapacity(capacity)), opts...)}
}

// Edit walks to pos, splices v in and erases it again through the same cursor.
func (p *Pooled[T]) Edit(pos int, v T) error {
	it := p.Begin()
	for i := 0; i < pos && !it.AtEnd(); i++ {
		if err := it.Next(); err != nil {
			return err
		}
	}
	if err := p.Insert(it, v); err != nil {
		return err
	}
	return p.Erase(it)
}
