// Package pqueue is a min-heap priority queue shared by the cost-ordered
// strategies (uniform-cost search, Dijkstra, A*).
//
// Entries are ordered by priority first and by insertion sequence second.
// The sequence number only makes ties deterministic; it carries no meaning
// beyond "inserted earlier".
package pqueue

import (
	"cmp"
	"container/heap"
)

// item pairs a value with its priority and insertion sequence.
type item[P cmp.Ordered, T any] struct {
	prio  P
	seq   uint64
	value T
}

// items implements heap.Interface over item, ordered by (prio, seq) ascending.
type items[P cmp.Ordered, T any] []item[P, T]

// Len returns the number of items in the heap.
func (h items[P, T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h items[P, T]) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h items[P, T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *items[P, T]) Push(x any) { *h = append(*h, x.(item[P, T])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *items[P, T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	var zero item[P, T]
	old[n-1] = zero
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue with insertion-order tie-breaking.
// The zero value is ready to use. Not safe for concurrent use.
type Queue[P cmp.Ordered, T any] struct {
	h   items[P, T]
	seq uint64
}

// New returns an empty Queue with room for capacity entries.
func New[P cmp.Ordered, T any](capacity int) *Queue[P, T] {
	return &Queue[P, T]{h: make(items[P, T], 0, capacity)}
}

// Push inserts v with priority p.
// Complexity: O(log n).
func (q *Queue[P, T]) Push(p P, v T) {
	heap.Push(&q.h, item[P, T]{prio: p, seq: q.seq, value: v})
	q.seq++
}

// Pop removes the entry with the smallest priority; among equal priorities
// the one pushed first wins. ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[P, T]) Pop() (v T, p P, ok bool) {
	if len(q.h) == 0 {
		return v, p, false
	}
	it := heap.Pop(&q.h).(item[P, T])

	return it.value, it.prio, true
}

// Len returns the number of queued entries.
func (q *Queue[P, T]) Len() int { return len(q.h) }
