// Package ds contrasts a FIFO queue, a priority queue and an ordered set
// fed the same input.
package ds

// Queue is a first-in first-out queue. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// Push appends v to the back.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Poll removes and returns the front element.
func (q *Queue[T]) Poll() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return v, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
