package slotqueue_test

import (
	"errors"
	"fmt"

	"github.com/i5heu/GoPoolQueue/pkg/pool"
	"github.com/i5heu/GoPoolQueue/pkg/slotqueue"
)

func ExampleQueue() {
	q := slotqueue.New[int](0x100)
	defer q.Close()

	for i := 1; i <= 3; i++ {
		_ = q.Push(i)
	}
	_ = q.Insert(q.Begin(), 0)

	for v := range q.All() {
		fmt.Println(v)
	}

	top, _ := q.Top()
	fmt.Println("top:", *top)
	// Output:
	// 0
	// 1
	// 2
	// 3
	// top: 0
}

func ExampleQueue_Push_outOfMemory() {
	q := slotqueue.New[string](1)
	defer q.Close()

	_ = q.Push("a")
	err := q.Push("b")
	fmt.Println(errors.Is(err, pool.ErrOutOfMemory))
	// Output: true
}
