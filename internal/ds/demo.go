package ds

import (
	"context"
	"io"

	"github.com/KromDaniel/concepts/internal/demo"
)

// Input is fed to every structure in the priority queue demo. 5 appears
// twice.
var Input = []int{7, 1, 5, 8, 3, 4, 9, 2, 6, 0, 5}

// RunPriorityQueue prints the input drained through a FIFO queue, a
// min-priority queue and a tree set.
func RunPriorityQueue(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	var q Queue[int]
	for _, v := range Input {
		q.Push(v)
	}
	for q.Len() > 0 {
		v, _ := q.Poll()
		p.Printf("%d ", v)
	}
	p.Println()

	// a binary min-heap: the head is always the smallest element
	pq := NewMin[int]()
	for _, v := range Input {
		pq.Push(v)
	}
	for pq.Len() > 0 {
		v, _ := pq.Poll()
		p.Printf("%d ", v)
	}
	p.Println()

	// sorted like the priority queue, but the duplicate 5 is dropped
	ts := NewTreeSet[int]()
	for _, v := range Input {
		ts.Add(v)
	}
	for _, v := range ts.Values() {
		p.Printf("%d ", v)
	}
	p.Println()

	return p.Err()
}

// TreeSetInput seeds the tree set navigation demo.
var TreeSetInput = []int{50, 20, 80, 10, 30, 70, 90, 20}

// RunTreeSet shows the navigation queries an ordered set answers in
// O(log N) and where a tree set sits among the tree family.
func RunTreeSet(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	ts := NewTreeSet[int]()
	for _, v := range TreeSetInput {
		if !ts.Add(v) {
			p.Printf("%d is already present\n", v)
		}
	}
	p.Println("values:", ts.Values(), "size:", ts.Len())
	p.Rule()

	first, _ := ts.First()
	last, _ := ts.Last()
	p.Println("first:", first, "last:", last)

	show := func(name string, v int, fn func(int) (int, bool)) {
		if r, ok := fn(v); ok {
			p.Printf("%s(%d) = %d\n", name, v, r)
		} else {
			p.Printf("%s(%d) = none\n", name, v)
		}
	}
	show("floor", 55, ts.Floor)
	show("ceiling", 55, ts.Ceiling)
	show("lower", 50, ts.Lower)
	show("higher", 50, ts.Higher)
	show("lower", 10, ts.Lower)
	p.Println("headSet(50):", ts.HeadSet(50))
	p.Println("tailSet(50):", ts.TailSet(50))
	p.Rule()

	ts.Remove(50)
	p.Println("after removing 50:", ts.Values(), "contains 50:", ts.Contains(50))
	p.Rule()

	p.Println("Pros: sorted iteration, range views and nearest-match queries in O(log N).")
	p.Println("Cons: slower than a hash set for plain membership; no duplicates; no index access.")
	p.Println("Every AVL tree is a red-black tree; both are binary search trees.")
	p.Println("AVL -> RB -> BST -> BT -> Tree -> Graph")

	return p.Err()
}
