// Package regex holds the regular-expression tutorials: string helpers, the
// Pattern/Matcher API, lookarounds, backreferences and named groups, common
// applications and the cost of recompiling a pattern.
//
// Every tutorial is a Run function writing plain text. The patterns are
// compiled with pkg/regexkit, which runs a backtracking engine, so the
// lookbehind, atomic and conditional constructs shown here work as written.
package regex

import (
	"context"
	"io"
	"strings"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// VowelWords are counted by RunVowels.
var VowelWords = []string{"Elephant", "Cats & Dogs", "aaa bbb iii", "123  abe 123", "aman#soni"}

var (
	hashes = regexkit.MustCompile(`#`)
	vowels = regexkit.MustCompile(`[aeiou]`, regexkit.WithIgnoreCase())
)

// VowCount counts vowels by checking each character against a set.
func VowCount(s string) int {
	count := 0
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}

// VowCountRgx counts vowels with two replacements: existing '#' marks are
// stripped, every vowel becomes '#', and the marks are counted.
func VowCountRgx(s string) (int, error) {
	stripped, err := hashes.ReplaceAll(s, "")
	if err != nil {
		return 0, err
	}
	marked, err := vowels.ReplaceAll(stripped, "#")
	if err != nil {
		return 0, err
	}
	return strings.Count(marked, "#"), nil
}

// RunVowels prints both counts for each of VowelWords.
func RunVowels(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	p.Println("String\t\t\tvowCount\tvowCountRgx")
	for _, s := range VowelWords {
		n, err := VowCountRgx(s)
		if err != nil {
			return err
		}
		p.Printf("%-16s\t%d\t\t%d\n", s, VowCount(s), n)
	}
	return p.Err()
}
