// Package analysis inspects the structure of a regular expression: which
// features it uses, whether Go's linear-time regexp package can run it, and
// whether it nests quantifiers in a way that makes backtracking engines blow
// up.
package analysis

import (
	"fmt"
	"regexp/syntax"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/exp/slices"
)

// Engine names reported by Analyze.
const (
	EngineRE2         = "RE2"
	EngineBacktracker = "Backtracking"
)

// Report holds the results of analysing one pattern.
type Report struct {
	Pattern string

	// Features are sorted labels such as "Captures" or "Lookaround".
	Features []string

	// Engine is EngineRE2 when the standard library can compile the pattern,
	// EngineBacktracker otherwise.
	Engine        string
	RE2Compatible bool
	RE2Error      string

	// CatastrophicRisk is set for nested quantifiers like (a+)+.
	CatastrophicRisk bool

	CaptureCount int
	CaptureNames []string

	// LengthKnown is false when the pattern could only be parsed by the
	// backtracking engine; MinLen and MaxLen are then meaningless.
	LengthKnown bool
	MinLen      int
	MaxLen      int // -1 means unbounded
}

// Analyze inspects pattern. It returns an error when the backtracking engine
// cannot compile it either.
func Analyze(pattern string) (*Report, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	r := &Report{
		Pattern:      pattern,
		Engine:       EngineBacktracker,
		CaptureCount: len(re.GetGroupNumbers()) - 1,
		MaxLen:       -1,
	}
	for _, name := range re.GetGroupNames() {
		if _, err := strconv.Atoi(name); err != nil {
			r.CaptureNames = append(r.CaptureNames, name)
		}
	}

	labels := scanConstructs(pattern)

	ast, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		r.RE2Error = err.Error()
		// nested quantifiers around a lookaround or backreference still
		// backtrack, so check the shape with those constructs rewritten
		if shape, err := syntax.Parse(re2Shape(pattern), syntax.Perl); err == nil {
			r.CatastrophicRisk = hasNestedQuantifiers(shape)
			labels = append(labels, astFeatures(shape)...)
		}
	} else {
		r.RE2Compatible = true
		r.Engine = EngineRE2
		r.CatastrophicRisk = hasNestedQuantifiers(ast)
		r.LengthKnown = true
		r.MinLen = minMatchLen(ast)
		r.MaxLen = maxMatchLen(ast)
		labels = append(labels, astFeatures(ast)...)
	}
	if r.CaptureCount > 0 {
		labels = append(labels, "Captures")
	}

	slices.Sort(labels)
	labels = slices.Compact(labels)
	if len(labels) == 0 {
		labels = []string{"Simple"}
	}
	r.Features = labels
	return r, nil
}

// scanConstructs finds the constructs only a backtracking engine supports by
// scanning the source, since regexp/syntax rejects them outright.
func scanConstructs(pattern string) []string {
	var labels []string
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			if !inClass && (next >= '1' && next <= '9' || next == 'k') {
				labels = append(labels, "Backreference")
			}
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a ']' right after '[' or '[^' is literal
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
			}
		case c == '(' && i+2 < len(pattern) && pattern[i+1] == '?':
			rest := pattern[i+2:]
			switch {
			case hasPrefix(rest, "="), hasPrefix(rest, "!"),
				hasPrefix(rest, "<="), hasPrefix(rest, "<!"):
				labels = append(labels, "Lookaround")
			case hasPrefix(rest, ">"):
				labels = append(labels, "Atomic")
			case hasPrefix(rest, "("):
				labels = append(labels, "Conditional")
			case hasPrefix(rest, ":"):
				labels = append(labels, "NonCapturing")
			}
		}
	}
	return labels
}

// re2Shape rewrites the constructs regexp/syntax rejects into RE2 syntax
// with the same nesting. Lookarounds and atomic groups become non-capturing
// groups, a conditional keeps its branches but drops its condition, and a
// backreference becomes an empty group. The result is for structural checks
// only; it does not match what pattern matches.
func re2Shape(pattern string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			if !inClass && next >= '1' && next <= '9' {
				i++
				for i+1 < len(pattern) && pattern[i+1] >= '0' && pattern[i+1] <= '9' {
					i++
				}
				b.WriteString("(?:)")
				continue
			}
			if !inClass && next == 'k' && i+2 < len(pattern) && (pattern[i+2] == '<' || pattern[i+2] == '\'') {
				closer := byte('>')
				if pattern[i+2] == '\'' {
					closer = '\''
				}
				if end := strings.IndexByte(pattern[i+3:], closer); end >= 0 {
					i += 3 + end
					b.WriteString("(?:)")
					continue
				}
			}
			b.WriteString(pattern[i : i+2])
			i++
		case inClass:
			b.WriteByte(c)
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			b.WriteByte(c)
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				b.WriteByte(']')
				i++
			}
		case c == '(' && i+2 < len(pattern) && pattern[i+1] == '?':
			rest := pattern[i+2:]
			switch {
			case hasPrefix(rest, "<="), hasPrefix(rest, "<!"):
				b.WriteString("(?:")
				i += 3
			case hasPrefix(rest, "="), hasPrefix(rest, "!"), hasPrefix(rest, ">"):
				b.WriteString("(?:")
				i += 2
			case hasPrefix(rest, "("):
				b.WriteString("(?:")
				i = closingParen(pattern, i+2)
			case hasPrefix(rest, "'") && strings.IndexByte(rest[1:], '\'') >= 0:
				// (?'name'...) is a named group RE2 does not know
				b.WriteByte('(')
				i += 3 + strings.IndexByte(rest[1:], '\'')
			default:
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// closingParen returns the index of the ')' closing the group opened at
// pattern[open], or the last index when the group is unbalanced.
func closingParen(pattern string, open int) int {
	depth := 0
	inClass := false
	for i := open; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(':
			depth++
		case c == ')':
			if depth--; depth == 0 {
				return i
			}
		}
	}
	return len(pattern) - 1
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// astFeatures derives labels from a parsed RE2 syntax tree.
func astFeatures(re *syntax.Regexp) []string {
	var labels []string
	walk(re, func(n *syntax.Regexp) {
		switch n.Op {
		case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
			labels = append(labels, "Anchored")
		case syntax.OpAlternate:
			labels = append(labels, "Alternation")
		case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
			labels = append(labels, "CharClass")
		case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
			labels = append(labels, "Quantifiers")
			if n.Flags&syntax.NonGreedy != 0 {
				labels = append(labels, "Lazy")
			}
		case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
			labels = append(labels, "WordBoundary")
		}
	})
	return labels
}

func walk(re *syntax.Regexp, fn func(*syntax.Regexp)) {
	fn(re)
	for _, sub := range re.Sub {
		walk(sub, fn)
	}
}

// hasNestedQuantifiers reports whether a repeating node contains another
// variable-count quantifier, the shape behind catastrophic backtracking.
func hasNestedQuantifiers(re *syntax.Regexp) bool {
	if repeats(re) {
		for _, sub := range re.Sub {
			if containsVariableQuantifier(sub) {
				return true
			}
		}
	}
	for _, sub := range re.Sub {
		if hasNestedQuantifiers(sub) {
			return true
		}
	}
	return false
}

// repeats reports whether re can match its operand an unbounded number of
// times. Bounded repeats such as {2} stay polynomial.
func repeats(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus:
		return true
	case syntax.OpRepeat:
		return re.Max == -1
	}
	return false
}

func containsVariableQuantifier(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest:
		return true
	case syntax.OpRepeat:
		if re.Min != re.Max {
			return true
		}
	}
	for _, sub := range re.Sub {
		if containsVariableQuantifier(sub) {
			return true
		}
	}
	return false
}
