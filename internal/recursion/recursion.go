// Package recursion traverses and sums arrays and checks palindromes
// recursively. Every function states its termination condition first.
package recursion

import (
	"fmt"
	"io"
)

// LeftToRight prints arr[i], arr[i+1], ... separated by spaces. An index
// outside arr prints nothing.
func LeftToRight(w io.Writer, arr []int, i int) error {
	if i < 0 || i >= len(arr) {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%d ", arr[i]); err != nil {
		return err
	}
	return LeftToRight(w, arr, i+1)
}

// RightToLeft prints arr[i], arr[i-1], ... down to arr[0].
func RightToLeft(w io.Writer, arr []int, i int) error {
	if i < 0 || i >= len(arr) {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%d ", arr[i]); err != nil {
		return err
	}
	return RightToLeft(w, arr, i-1)
}

// Sum adds arr[start..end] inclusive. It returns 0 once start passes end.
func Sum(arr []int, start, end int) int {
	if start > end {
		return 0
	}
	return arr[start] + Sum(arr, start+1, end)
}

// SophisticatedSum adds arr[start:] with a single return statement.
func SophisticatedSum(arr []int, start int) int {
	sum := 0
	if start < len(arr) {
		sum += arr[start] + SophisticatedSum(arr, start+1)
	}
	return sum
}

// IsPalindrome reports whether s reads the same in both directions,
// comparing runes rather than bytes.
func IsPalindrome(s string) bool {
	return isPalindrome([]rune(s))
}

func isPalindrome(r []rune) bool {
	if len(r) <= 1 {
		return true
	}
	if r[0] != r[len(r)-1] {
		return false
	}
	return isPalindrome(r[1 : len(r)-1])
}
