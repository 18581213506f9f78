package ds

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PriorityQueue polls the element with the highest priority first, where
// less(a, b) means a has higher priority than b. Elements of equal priority
// are polled in insertion order.
type PriorityQueue[T any] struct {
	h   entries[T]
	seq uint64
}

// NewPriorityQueue returns an empty queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: entries[T]{less: less}}
}

// NewMin returns a queue that polls the smallest element first.
func NewMin[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(func(a, b T) bool { return a < b })
}

// NewMax returns a queue that polls the largest element first.
func NewMax[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(func(a, b T) bool { return a > b })
}

// Push adds v.
func (pq *PriorityQueue[T]) Push(v T) {
	heap.Push(&pq.h, entry[T]{value: v, seq: pq.seq})
	pq.seq++
}

// Poll removes and returns the highest-priority element.
func (pq *PriorityQueue[T]) Poll() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&pq.h).(entry[T]).value, true
}

// Peek returns the highest-priority element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return pq.h.items[0].value, true
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

type entry[T any] struct {
	value T
	seq   uint64
}

// entries implements heap.Interface; seq breaks ties so equal elements
// leave in the order they arrived.
type entries[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
}

func (e entries[T]) Len() int { return len(e.items) }

func (e entries[T]) Less(i, j int) bool {
	a, b := e.items[i], e.items[j]
	if e.less(a.value, b.value) {
		return true
	}
	if e.less(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

func (e entries[T]) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries[T]) Push(x any) { e.items = append(e.items, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	last := len(e.items) - 1
	x := e.items[last]
	e.items[last] = entry[T]{}
	e.items = e.items[:last]
	return x
}
