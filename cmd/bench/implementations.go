package main

import (
	"github.com/i5heu/GoPoolQueue/internal/baseline"
	"github.com/i5heu/GoPoolQueue/internal/logger"
	"github.com/i5heu/GoPoolQueue/pkg/pool"
)

type benchQueue = interface {
	Enqueue(*int) error
	Dequeue() (*int, bool)
	FreeSlots() uint64
	UsedSlots() uint64
}

// Implementation represents a queue implementation.
type Implementation[T any, Q interface {
	Enqueue(T) error
	Dequeue() (T, bool)
	FreeSlots() uint64
	UsedSlots() uint64
}] struct {
	name        string
	description string
	pkgName     string
	features    []string
	newQueue    func(capacity uint64) Q
}

// statsSource is implemented by queues that can report pool accounting.
type statsSource interface {
	Stats() pool.Stats
}

// getImplementations enumerates the queues under test.
func getImplementations() []Implementation[*int, benchQueue] {
	return []Implementation[*int, benchQueue]{
		{
			name:        "SlotQueue",
			pkgName:     "slotqueue",
			description: "Singly linked FIFO whose nodes live in a fixed-capacity slot pool with a free list.",
			features:    []string{"FIFO", "Bounded", "Splice", "Pooled"},
			newQueue: func(capacity uint64) benchQueue {
				return baseline.NewPooled[*int](capacity, pool.WithLogger(logger.L))
			},
		},
		{
			name:        "Golang Buffered Channel",
			pkgName:     "baseline",
			description: "Standard buffered channel with non-blocking send and receive.",
			features:    []string{"FIFO", "Bounded"},
			newQueue: func(capacity uint64) benchQueue {
				return baseline.NewChannel[*int](capacity)
			},
		},
		{
			name:        "EapacheRing",
			pkgName:     "eapache/queue",
			description: "Growable ring buffer with power-of-two resizing.",
			features:    []string{"FIFO", "Bounded"},
			newQueue: func(capacity uint64) benchQueue {
				return baseline.NewRing[*int](capacity)
			},
		},
		{
			name:        "GammazeroDeque",
			pkgName:     "gammazero/deque",
			description: "Ring-buffer double-ended queue with positional insert and remove.",
			features:    []string{"FIFO", "Bounded", "Splice"},
			newQueue: func(capacity uint64) benchQueue {
				return baseline.NewDeque[*int](capacity)
			},
		},
		{
			name:        "ContainerList",
			pkgName:     "container/list",
			description: "Doubly linked list with one heap allocation per element.",
			features:    []string{"FIFO", "Bounded", "Splice"},
			newQueue: func(capacity uint64) benchQueue {
				return baseline.NewList[*int](capacity)
			},
		},
	}
}

func hasFeature(features []string, feature string) bool {
	for _, f := range features {
		if f == feature {
			return true
		}
	}
	return false
}
