package complexity

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// MergeSort returns a sorted copy of xs and the number of comparisons it
// made, which grows as N log N.
func MergeSort[T constraints.Ordered](xs []T) ([]T, int) {
	out := slices.Clone(xs)
	buf := make([]T, len(xs))
	return out, mergeSort(out, buf)
}

func mergeSort[T constraints.Ordered](xs, buf []T) int {
	if len(xs) < 2 {
		return 0
	}
	mid := len(xs) / 2
	comparisons := mergeSort(xs[:mid], buf[:mid]) + mergeSort(xs[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(xs) {
		comparisons++
		if xs[j] < xs[i] {
			buf[k] = xs[j]
			j++
		} else {
			buf[k] = xs[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], xs[i:mid])
	copy(buf[k:], xs[j:])
	copy(xs, buf[:len(xs)])
	return comparisons
}

// PowerSet returns all 2^N subsets of xs. Subset m holds xs[i] exactly
// when bit i of m is set, so the empty set comes first.
func PowerSet[T any](xs []T) [][]T {
	if len(xs) >= 63 {
		panic("complexity: power set too large")
	}
	out := make([][]T, 0, 1<<len(xs))
	for m := 0; m < 1<<len(xs); m++ {
		var subset []T
		for i := range xs {
			if m&(1<<i) != 0 {
				subset = append(subset, xs[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

// Permutations returns all N! orderings of xs in lexicographic order of
// positions.
func Permutations[T any](xs []T) [][]T {
	var out [][]T
	used := make([]bool, len(xs))
	cur := make([]T, 0, len(xs))
	var walk func()
	walk = func() {
		if len(cur) == len(xs) {
			out = append(out, slices.Clone(cur))
			return
		}
		for i := range xs {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, xs[i])
			walk()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
