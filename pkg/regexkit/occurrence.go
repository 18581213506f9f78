package regexkit

import (
	"fmt"

	"github.com/KromDaniel/concepts/replace"
)

// CountMatches returns the number of non-overlapping matches in s. There is
// no single call that answers this; the matcher has to be walked.
func (p *Pattern) CountMatches(s string) (int, error) {
	m := p.Matcher(s)
	count := 0
	for {
		ok, err := m.Find()
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// CountOverlapping counts matches when each search restarts one character
// after the start of the previous match, so "cosco" occurs twice in
// "coscosco".
func (p *Pattern) CountOverlapping(s string) (int, error) {
	m := p.Matcher(s)
	count := 0
	for i := 0; i <= len(m.input); {
		ok, err := m.FindFrom(i)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		count++
		start, _ := m.Start(0)
		i = start + 1
	}
	return count, nil
}

// FindNth returns the n-th (1-based) non-overlapping match.
func (p *Pattern) FindNth(s string, n int) (Match, bool, error) {
	if n < 1 {
		return Match{}, false, fmt.Errorf("%w: occurrence %d", ErrIndexOutOfRange, n)
	}
	m := p.Matcher(s)
	for seen := 0; ; {
		ok, err := m.Find()
		if err != nil {
			return Match{}, false, err
		}
		if !ok {
			return Match{}, false, nil
		}
		if seen++; seen == n {
			return m.snapshot(), true, nil
		}
	}
}

// ReplaceExceptNth replaces every match except the n-th (1-based) one with
// the expansion of template. When n is not positive or exceeds the number
// of matches, every match is replaced.
func (p *Pattern) ReplaceExceptNth(s, template string, n int) (string, error) {
	t, err := replace.Parse(template)
	if err != nil {
		return "", err
	}
	return p.replace(s, -1, func(count int, m Match) (string, bool) {
		if count == n {
			return "", false
		}
		return t.Expand(m), true
	})
}

// ReplaceNth replaces only the n-th (1-based) match.
func (p *Pattern) ReplaceNth(s, template string, n int) (string, error) {
	t, err := replace.Parse(template)
	if err != nil {
		return "", err
	}
	return p.replace(s, -1, func(count int, m Match) (string, bool) {
		if count != n {
			return "", false
		}
		return t.Expand(m), true
	})
}
