// Package slotqueue provides a singly linked FIFO whose nodes live in a
// fixed-capacity pool.Pool.
//
// Each node exclusively owns its successor through a pool.Slot link; the queue
// owns the head link. Destroying a node zeroes it and returns its slot to the
// pool immediately, so a queue never holds more than the pool's capacity and
// Close can verify that every slot came back.
//
// Iterators point at a link cell (the queue's head link or a node's next
// field), not at a node. Insert and Erase splice through that cell in O(1)
// without back pointers. An iterator is invalidated by Pop, Insert or Erase on
// its own cell or on any cell between it and the head.
//
// A Queue is not safe for concurrent use.
package slotqueue
