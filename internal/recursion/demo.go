package recursion

import (
	"context"
	"io"

	"github.com/KromDaniel/concepts/internal/demo"
)

// Array is traversed and summed by RunArrayTraversal.
var Array = []int{10, 20, 30, 40, 50, 60, 70, 80}

// Words are checked by RunPalindrome.
var Words = []string{"racecar", "raceecar", "a", "ab", "", "collection"}

// RunArrayTraversal prints Array in both directions and its sum computed
// two ways.
func RunArrayTraversal(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	p.Fail(LeftToRight(w, Array, 0))
	p.Println()
	p.Fail(RightToLeft(w, Array, len(Array)-1))
	p.Println()
	p.Println(Sum(Array, 0, len(Array)-1))
	p.Println(SophisticatedSum(Array, 0))
	return p.Err()
}

// RunPalindrome prints IsPalindrome for each of Words.
func RunPalindrome(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	for _, s := range Words {
		p.Printf("%q: %t\n", s, IsPalindrome(s))
	}
	return p.Err()
}
