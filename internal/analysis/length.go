package analysis

import (
	"regexp/syntax"
	"unicode/utf8"
)

// minMatchLen returns the fewest bytes any match of re can span.
func minMatchLen(re *syntax.Regexp) int {
	switch re.Op {
	case syntax.OpLiteral:
		return literalLen(re.Rune)
	case syntax.OpCharClass:
		if len(re.Rune) == 0 {
			return 0
		}
		shortest := utf8.UTFMax
		for i := 0; i < len(re.Rune); i += 2 {
			shortest = min(shortest, utf8.RuneLen(re.Rune[i]))
		}
		return shortest
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1
	case syntax.OpCapture, syntax.OpPlus:
		return minMatchLen(re.Sub[0])
	case syntax.OpRepeat:
		return re.Min * minMatchLen(re.Sub[0])
	case syntax.OpConcat:
		total := 0
		for _, sub := range re.Sub {
			total += minMatchLen(sub)
		}
		return total
	case syntax.OpAlternate:
		shortest := -1
		for _, sub := range re.Sub {
			if n := minMatchLen(sub); shortest < 0 || n < shortest {
				shortest = n
			}
		}
		return max(shortest, 0)
	}
	// empty matches, assertions, star and quest
	return 0
}

// maxMatchLen returns the most bytes a match of re can span, or -1 when
// there is no bound.
func maxMatchLen(re *syntax.Regexp) int {
	switch re.Op {
	case syntax.OpLiteral:
		return literalLen(re.Rune)
	case syntax.OpCharClass:
		longest := 0
		for i := 1; i < len(re.Rune); i += 2 {
			longest = max(longest, utf8.RuneLen(re.Rune[i]))
		}
		return longest
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return utf8.UTFMax
	case syntax.OpStar, syntax.OpPlus:
		return -1
	case syntax.OpCapture, syntax.OpQuest:
		return maxMatchLen(re.Sub[0])
	case syntax.OpRepeat:
		if re.Max == -1 {
			return -1
		}
		sub := maxMatchLen(re.Sub[0])
		if sub == -1 {
			return -1
		}
		return re.Max * sub
	case syntax.OpConcat, syntax.OpAlternate:
		total := 0
		for _, sub := range re.Sub {
			n := maxMatchLen(sub)
			if n == -1 {
				return -1
			}
			if re.Op == syntax.OpConcat {
				total += n
			} else {
				total = max(total, n)
			}
		}
		return total
	}
	return 0
}

func literalLen(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += utf8.RuneLen(r)
	}
	return total
}
