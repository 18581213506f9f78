package ds

import (
	"bytes"
	"context"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainQueue(q *Queue[int]) []int {
	var out []int
	for q.Len() > 0 {
		v, _ := q.Poll()
		out = append(out, v)
	}
	return out
}

func TestQueue(t *testing.T) {
	var q Queue[int]
	_, ok := q.Poll()
	assert.False(t, ok)

	for _, v := range Input {
		q.Push(v)
	}
	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, front)
	assert.Equal(t, Input, drainQueue(&q))

	for i := 0; i < 100; i++ {
		q.Push(i)
		if i%3 == 0 {
			q.Poll()
		}
	}
	assert.Equal(t, 66, q.Len())
}

func TestPriorityQueue(t *testing.T) {
	pq := NewMin[int]()
	for _, v := range Input {
		pq.Push(v)
	}
	head, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, head)

	var got []int
	for pq.Len() > 0 {
		v, _ := pq.Poll()
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 5, 6, 7, 8, 9}, got)

	_, ok = pq.Poll()
	assert.False(t, ok)
	_, ok = pq.Peek()
	assert.False(t, ok)
}

func TestPriorityQueueMax(t *testing.T) {
	pq := NewMax[string]()
	for _, v := range []string{"fig", "pear", "apple"} {
		pq.Push(v)
	}
	v, _ := pq.Poll()
	assert.Equal(t, "pear", v)
}

func TestPriorityQueueStable(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	pq := NewPriorityQueue(func(a, b job) bool { return a.priority < b.priority })
	for _, j := range []job{{"a", 2}, {"b", 1}, {"c", 2}, {"d", 1}, {"e", 2}} {
		pq.Push(j)
	}
	var names []string
	for pq.Len() > 0 {
		j, _ := pq.Poll()
		names = append(names, j.name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, names)
}

// checkInvariants verifies the left-leaning red-black shape and returns
// the black height.
func checkInvariants[T any](t *testing.T, n *node[T], parentRed bool) int {
	t.Helper()
	if n == nil {
		return 1
	}
	require.False(t, isRed(n.right), "red right link")
	require.False(t, parentRed && n.red, "two reds in a row")
	lh := checkInvariants(t, n.left, n.red)
	rh := checkInvariants(t, n.right, n.red)
	require.Equal(t, lh, rh, "black heights differ")
	if n.red {
		return lh
	}
	return lh + 1
}

func TestTreeSetBasics(t *testing.T) {
	ts := NewTreeSet[int]()
	for _, v := range Input {
		ts.Add(v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ts.Values())
	assert.Equal(t, 10, ts.Len())
	assert.False(t, ts.Add(5))
	assert.True(t, ts.Contains(9))
	assert.False(t, ts.Contains(10))
	checkInvariants(t, ts.root, false)
}

func TestTreeSetNavigation(t *testing.T) {
	ts := NewTreeSet[int]()
	for _, v := range TreeSetInput {
		ts.Add(v)
	}

	type query struct {
		name string
		fn   func(int) (int, bool)
		in   int
		want int
		ok   bool
	}
	for _, q := range []query{
		{"floor", ts.Floor, 55, 50, true},
		{"floor", ts.Floor, 50, 50, true},
		{"floor", ts.Floor, 5, 0, false},
		{"ceiling", ts.Ceiling, 55, 70, true},
		{"ceiling", ts.Ceiling, 90, 90, true},
		{"ceiling", ts.Ceiling, 95, 0, false},
		{"lower", ts.Lower, 50, 30, true},
		{"lower", ts.Lower, 10, 0, false},
		{"lower", ts.Lower, 11, 10, true},
		{"higher", ts.Higher, 50, 70, true},
		{"higher", ts.Higher, 90, 0, false},
		{"higher", ts.Higher, 0, 10, true},
	} {
		got, ok := q.fn(q.in)
		assert.Equal(t, q.ok, ok, "%s(%d)", q.name, q.in)
		assert.Equal(t, q.want, got, "%s(%d)", q.name, q.in)
	}

	first, _ := ts.First()
	last, _ := ts.Last()
	assert.Equal(t, 10, first)
	assert.Equal(t, 90, last)
	assert.Equal(t, []int{10, 20, 30}, ts.HeadSet(50))
	assert.Equal(t, []int{50, 70, 80, 90}, ts.TailSet(50))
	assert.Empty(t, ts.HeadSet(10))
}

func TestTreeSetEmpty(t *testing.T) {
	ts := NewTreeSet[string]()
	_, ok := ts.First()
	assert.False(t, ok)
	_, ok = ts.Last()
	assert.False(t, ok)
	_, ok = ts.Floor("x")
	assert.False(t, ok)
	assert.False(t, ts.Remove("x"))
	assert.Empty(t, ts.Values())
}

func TestTreeSetRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ts := NewTreeSet[int]()
	ref := map[int]bool{}

	for i := 0; i < 2000; i++ {
		v := rng.Intn(300)
		if rng.Intn(3) == 0 {
			assert.Equal(t, ref[v], ts.Remove(v))
			delete(ref, v)
		} else {
			assert.Equal(t, !ref[v], ts.Add(v))
			ref[v] = true
		}
		if i%100 == 0 {
			checkInvariants(t, ts.root, false)
		}
	}
	checkInvariants(t, ts.root, false)

	want := make([]int, 0, len(ref))
	for v := range ref {
		want = append(want, v)
	}
	sort.Ints(want)
	assert.Equal(t, want, ts.Values())
	assert.Equal(t, len(want), ts.Len())
}

func TestTreeSetCustomOrder(t *testing.T) {
	ts := NewTreeSetFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	ts.Add("Banana")
	ts.Add("apple")
	assert.False(t, ts.Add("BANANA"))
	assert.Equal(t, []string{"apple", "Banana"}, ts.Values())
}

func TestRunPriorityQueue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunPriorityQueue(context.Background(), &buf))
	assert.Equal(t, "7 1 5 8 3 4 9 2 6 0 5 \n0 1 2 3 4 5 5 6 7 8 9 \n0 1 2 3 4 5 6 7 8 9 \n", buf.String())
}

func TestRunTreeSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunTreeSet(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "20 is already present")
	assert.Contains(t, out, "values: [10 20 30 50 70 80 90] size: 7")
	assert.Contains(t, out, "floor(55) = 50")
	assert.Contains(t, out, "lower(10) = none")
	assert.Contains(t, out, "after removing 50: [10 20 30 70 80 90] contains 50: false")
	assert.Contains(t, out, "AVL -> RB -> BST -> BT -> Tree -> Graph")
}
