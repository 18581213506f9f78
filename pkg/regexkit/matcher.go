package regexkit

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Matcher is a stateful cursor over one input for one Pattern.
//
// The search area is the matcher's region, which defaults to the whole
// input. Lookarounds cannot see past the region bounds and ^/$ anchor at
// them.
type Matcher struct {
	pattern *Pattern
	src     string
	input   []rune
	offsets []int // byte offset in src of each rune index, plus len(src)
	from    int
	to      int
	next    int
	last    *regexp2.Match
	base    int // region start the last match was found in
}

// Pattern returns the pattern currently in use.
func (m *Matcher) Pattern() *Pattern {
	return m.pattern
}

// Input returns the input the matcher walks.
func (m *Matcher) Input() string {
	return m.src
}

// Reset discards match state and restores the region to the whole input.
func (m *Matcher) Reset() *Matcher {
	m.from = 0
	m.to = len(m.input)
	m.next = 0
	m.last = nil
	m.base = 0
	return m
}

// ResetInput rebinds the matcher to a new input and resets it.
func (m *Matcher) ResetInput(input string) *Matcher {
	m.src = input
	m.input = m.input[:0]
	m.offsets = m.offsets[:0]
	for i, r := range input {
		m.input = append(m.input, r)
		m.offsets = append(m.offsets, i)
	}
	m.offsets = append(m.offsets, len(input))
	return m.Reset()
}

// text returns the original input between rune indices start and end.
// Invalid UTF-8 is copied through unchanged.
func (m *Matcher) text(start, end int) string {
	return m.src[m.offsets[start]:m.offsets[end]]
}

// UsePattern switches to p while keeping the search position and region.
// Group information from the previous pattern is discarded.
func (m *Matcher) UsePattern(p *Pattern) *Matcher {
	m.pattern = p
	m.last = nil
	return m
}

// Region limits searching to [start, end) and resets the search position.
func (m *Matcher) Region(start, end int) error {
	if start < 0 || end > len(m.input) || start > end {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRegion, start, end, len(m.input))
	}
	m.from = start
	m.to = end
	m.next = start
	m.last = nil
	return nil
}

// RegionStart returns the start of the region.
func (m *Matcher) RegionStart() int {
	return m.from
}

// RegionEnd returns the end of the region.
func (m *Matcher) RegionEnd() int {
	return m.to
}

// Matches reports whether the entire region matches the pattern.
func (m *Matcher) Matches() (bool, error) {
	whole, _, err := m.pattern.anchors()
	if err != nil {
		return false, err
	}
	return m.attempt(whole, 0, false)
}

// LookingAt reports whether a prefix of the region matches the pattern.
// It never reports false where Matches reports true.
func (m *Matcher) LookingAt() (bool, error) {
	_, prefix, err := m.pattern.anchors()
	if err != nil {
		return false, err
	}
	return m.attempt(prefix, 0, false)
}

// Find searches for the next match, starting where the previous one ended.
// After an empty match the search resumes one character further on.
func (m *Matcher) Find() (bool, error) {
	if m.next > m.to {
		m.last = nil
		return false, nil
	}
	return m.attempt(m.pattern.re, m.next-m.from, true)
}

// FindFrom resets the matcher and searches for a match starting at index
// start of the input. Moving start forward one character after each match
// is how overlapping occurrences are found.
func (m *Matcher) FindFrom(start int) (bool, error) {
	if start < 0 || start > len(m.input) {
		return false, fmt.Errorf("%w: start %d of %d", ErrIndexOutOfRange, start, len(m.input))
	}
	m.Reset()
	return m.attempt(m.pattern.re, start, true)
}

func (m *Matcher) attempt(re *regexp2.Regexp, startAt int, advance bool) (bool, error) {
	match, err := re.FindRunesMatchStartingAt(m.input[m.from:m.to], startAt)
	if err != nil {
		m.last = nil
		return false, fmt.Errorf("regexkit: match %q: %w", m.pattern.expr, err)
	}
	if match == nil {
		m.last = nil
		if advance {
			m.next = m.to + 1
		}
		return false, nil
	}

	m.last = match
	m.base = m.from
	m.next = m.from + match.Index + match.Length
	if match.Length == 0 {
		m.next++
	}
	return true, nil
}

// GroupCount returns the number of capturing groups in the pattern.
func (m *Matcher) GroupCount() int {
	return m.pattern.count
}

func (m *Matcher) group(i int) (*regexp2.Group, error) {
	if m.last == nil {
		return nil, ErrNoMatch
	}
	if i < 0 || i > m.pattern.count {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchGroup, i)
	}
	g := m.last.GroupByNumber(i)
	if g == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchGroup, i)
	}
	return g, nil
}

// participated reports whether group i took part in the match. Group 0 is
// the match itself.
func participated(i int, g *regexp2.Group) bool {
	return i == 0 || len(g.Captures) > 0
}

// Group returns the text captured by group i of the last match; group 0 is
// the whole match. A group that did not take part in the match yields "".
// Use GroupMatched to tell it apart from an empty capture.
func (m *Matcher) Group(i int) (string, error) {
	g, err := m.group(i)
	if err != nil {
		return "", err
	}
	if !participated(i, g) {
		return "", nil
	}
	start := m.base + g.Index
	return m.text(start, start+g.Length), nil
}

// GroupMatched reports whether group i took part in the last match.
func (m *Matcher) GroupMatched(i int) (bool, error) {
	g, err := m.group(i)
	if err != nil {
		return false, err
	}
	return participated(i, g), nil
}

// NamedGroup returns the text captured by the named group.
func (m *Matcher) NamedGroup(name string) (string, error) {
	n, ok := m.pattern.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSuchGroup, name)
	}
	return m.Group(n)
}

// Start returns the start index of group i in the last match, or -1 when
// the group did not take part.
func (m *Matcher) Start(i int) (int, error) {
	g, err := m.group(i)
	if err != nil {
		return 0, err
	}
	if !participated(i, g) {
		return -1, nil
	}
	return m.base + g.Index, nil
}

// End returns the index just past group i in the last match, or -1 when
// the group did not take part.
func (m *Matcher) End(i int) (int, error) {
	g, err := m.group(i)
	if err != nil {
		return 0, err
	}
	if !participated(i, g) {
		return -1, nil
	}
	return m.base + g.Index + g.Length, nil
}

// Snapshot returns an immutable copy of the last match.
func (m *Matcher) Snapshot() (Match, error) {
	if m.last == nil {
		return Match{}, ErrNoMatch
	}
	return m.snapshot(), nil
}

func (m *Matcher) snapshot() Match {
	groups := m.last.Groups()
	res := Match{
		groups: make([]span, len(groups)),
		names:  m.pattern.names,
	}
	for i := range groups {
		g := &groups[i]
		if !participated(i, g) {
			res.groups[i] = span{start: -1, end: -1}
			continue
		}
		start := m.base + g.Index
		res.groups[i] = span{text: m.text(start, start+g.Length), start: start, end: start + g.Length, ok: true}
	}
	res.Text = res.groups[0].text
	res.Start = res.groups[0].start
	res.End = res.groups[0].end
	return res
}

type span struct {
	text       string
	start, end int
	ok         bool
}

// Match is a snapshot of one successful match.
type Match struct {
	Text  string
	Start int
	End   int

	groups []span
	names  map[string]int
}

// Group returns the text of group i and whether it took part in the match.
func (m Match) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.groups) {
		return "", false
	}
	return m.groups[i].text, m.groups[i].ok
}

// NamedGroup returns the text of the named group and whether it took part.
func (m Match) NamedGroup(name string) (string, bool) {
	n, ok := m.names[name]
	if !ok {
		return "", false
	}
	return m.Group(n)
}

// Span returns the start and end of group i, or -1, -1 when it did not take
// part in the match.
func (m Match) Span(i int) (start, end int) {
	if i < 0 || i >= len(m.groups) {
		return -1, -1
	}
	return m.groups[i].start, m.groups[i].end
}

// GroupCount returns the number of capturing groups, not counting group 0.
func (m Match) GroupCount() int {
	if len(m.groups) == 0 {
		return 0
	}
	return len(m.groups) - 1
}
