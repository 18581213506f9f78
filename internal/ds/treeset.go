package ds

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set of distinct elements kept in a left-leaning
// red-black tree, so insertion, removal and every navigation query take
// O(log N).
type TreeSet[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
}

type node[T any] struct {
	key         T
	left, right *node[T]
	red         bool
}

// NewTreeSet returns an empty set using the natural ordering of T.
func NewTreeSet[T constraints.Ordered]() *TreeSet[T] {
	return NewTreeSetFunc(cmp.Compare[T])
}

// NewTreeSetFunc returns an empty set ordered by compare, which returns a
// negative number, zero or a positive number.
func NewTreeSetFunc[T any](compare func(a, b T) int) *TreeSet[T] {
	return &TreeSet[T]{compare: compare}
}

// Len returns the number of elements.
func (s *TreeSet[T]) Len() int {
	return s.size
}

// Add inserts v and reports whether it was absent.
func (s *TreeSet[T]) Add(v T) bool {
	var added bool
	s.root, added = s.insert(s.root, v)
	s.root.red = false
	if added {
		s.size++
	}
	return added
}

func (s *TreeSet[T]) insert(h *node[T], v T) (*node[T], bool) {
	if h == nil {
		return &node[T]{key: v, red: true}, true
	}
	var added bool
	switch c := s.compare(v, h.key); {
	case c < 0:
		h.left, added = s.insert(h.left, v)
	case c > 0:
		h.right, added = s.insert(h.right, v)
	default:
		return h, false
	}
	return balance(h), added
}

// Contains reports whether v is in the set.
func (s *TreeSet[T]) Contains(v T) bool {
	for n := s.root; n != nil; {
		switch c := s.compare(v, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Remove deletes v and reports whether it was present.
func (s *TreeSet[T]) Remove(v T) bool {
	if !s.Contains(v) {
		return false
	}
	if !isRed(s.root.left) && !isRed(s.root.right) {
		s.root.red = true
	}
	s.root = s.delete(s.root, v)
	if s.root != nil {
		s.root.red = false
	}
	s.size--
	return true
}

// delete removes v from the subtree at h, which must contain it.
func (s *TreeSet[T]) delete(h *node[T], v T) *node[T] {
	if s.compare(v, h.key) < 0 {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = s.delete(h.left, v)
		return balance(h)
	}
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if s.compare(v, h.key) == 0 && h.right == nil {
		return nil
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	if s.compare(v, h.key) == 0 {
		h.key = minNode(h.right).key
		h.right = deleteMin(h.right)
	} else {
		h.right = s.delete(h.right, v)
	}
	return balance(h)
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.red
}

func rotateLeft[T any](h *node[T]) *node[T] {
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = true
	return x
}

func rotateRight[T any](h *node[T]) *node[T] {
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = true
	return x
}

func flipColors[T any](h *node[T]) {
	h.red = !h.red
	h.left.red = !h.left.red
	h.right.red = !h.right.red
}

// balance restores the left-leaning invariants on the way up.
func balance[T any](h *node[T]) *node[T] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}

func moveRedLeft[T any](h *node[T]) *node[T] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

func moveRedRight[T any](h *node[T]) *node[T] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

func minNode[T any](h *node[T]) *node[T] {
	for h.left != nil {
		h = h.left
	}
	return h
}

func deleteMin[T any](h *node[T]) *node[T] {
	if h.left == nil {
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = deleteMin(h.left)
	return balance(h)
}

// First returns the smallest element.
func (s *TreeSet[T]) First() (T, bool) {
	if s.root == nil {
		var zero T
		return zero, false
	}
	return minNode(s.root).key, true
}

// Last returns the largest element.
func (s *TreeSet[T]) Last() (T, bool) {
	var zero T
	n := s.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// search walks toward v and returns the best candidate on each side:
// below is the largest key < v (or <= v when inclusive), above the
// smallest key > v (or >= v when inclusive).
func (s *TreeSet[T]) search(v T, inclusive bool) (below, above *node[T]) {
	for n := s.root; n != nil; {
		c := s.compare(v, n.key)
		switch {
		case c == 0 && inclusive:
			return n, n
		case c > 0:
			below = n
			n = n.right
		default:
			if c < 0 {
				above = n
			}
			if c == 0 {
				// exclusive: neighbours lie in the subtrees
				below, above = s.neighbours(n, below, above)
				return below, above
			}
			n = n.left
		}
	}
	return below, above
}

func (s *TreeSet[T]) neighbours(n, below, above *node[T]) (*node[T], *node[T]) {
	if n.left != nil {
		below = n.left
		for below.right != nil {
			below = below.right
		}
	}
	if n.right != nil {
		above = minNode(n.right)
	}
	return below, above
}

func keyOf[T any](n *node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.key, true
}

// Floor returns the largest element <= v.
func (s *TreeSet[T]) Floor(v T) (T, bool) {
	below, _ := s.search(v, true)
	return keyOf(below)
}

// Ceiling returns the smallest element >= v.
func (s *TreeSet[T]) Ceiling(v T) (T, bool) {
	_, above := s.search(v, true)
	return keyOf(above)
}

// Lower returns the largest element < v.
func (s *TreeSet[T]) Lower(v T) (T, bool) {
	below, _ := s.search(v, false)
	return keyOf(below)
}

// Higher returns the smallest element > v.
func (s *TreeSet[T]) Higher(v T) (T, bool) {
	_, above := s.search(v, false)
	return keyOf(above)
}

// Values returns the elements in ascending order.
func (s *TreeSet[T]) Values() []T {
	out := make([]T, 0, s.size)
	s.walk(s.root, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// HeadSet returns the elements strictly below v in ascending order.
func (s *TreeSet[T]) HeadSet(v T) []T {
	var out []T
	s.walk(s.root, func(k T) bool {
		if s.compare(k, v) >= 0 {
			return false
		}
		out = append(out, k)
		return true
	})
	return out
}

// TailSet returns the elements at or above v in ascending order.
func (s *TreeSet[T]) TailSet(v T) []T {
	var out []T
	s.walk(s.root, func(k T) bool {
		if s.compare(k, v) >= 0 {
			out = append(out, k)
		}
		return true
	})
	return out
}

// walk visits keys in order until fn returns false.
func (s *TreeSet[T]) walk(n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return s.walk(n.left, fn) && fn(n.key) && s.walk(n.right, fn)
}
