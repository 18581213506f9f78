package regexkit

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KromDaniel/concepts/replace"
	"github.com/dlclark/regexp2"
)

// Option configures how a pattern is compiled.
type Option func(*options)

type options struct {
	flags   regexp2.RegexOptions
	timeout time.Duration
}

// WithIgnoreCase enables case-insensitive matching.
func WithIgnoreCase() Option {
	return func(o *options) { o.flags |= regexp2.IgnoreCase }
}

// WithMultiline makes ^ and $ match at line boundaries.
func WithMultiline() Option {
	return func(o *options) { o.flags |= regexp2.Multiline }
}

// WithSingleline lets '.' match newlines.
func WithSingleline() Option {
	return func(o *options) { o.flags |= regexp2.Singleline }
}

// WithTimeout bounds the time a single match attempt may take. Zero means
// no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Pattern is a compiled regular expression.
type Pattern struct {
	expr  string
	opts  options
	re    *regexp2.Regexp
	names map[string]int
	count int

	// whole-input and prefix variants, compiled on first use
	anchorOnce sync.Once
	anchored   *regexp2.Regexp
	prefix     *regexp2.Regexp
	anchorErr  error
}

// Compile parses expr and returns a Pattern.
func Compile(expr string, opts ...Option) (*Pattern, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	re, err := compile(expr, o)
	if err != nil {
		return nil, fmt.Errorf("regexkit: compile %q: %w", expr, err)
	}

	p := &Pattern{
		expr:  expr,
		opts:  o,
		re:    re,
		names: make(map[string]int),
		count: len(re.GetGroupNumbers()) - 1,
	}
	for _, name := range re.GetGroupNames() {
		if _, err := strconv.Atoi(name); err == nil {
			continue
		}
		p.names[name] = re.GroupNumberFromName(name)
	}
	return p, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string, opts ...Option) *Pattern {
	p, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(expr string, o options) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, o.flags)
	if err != nil {
		return nil, err
	}
	if o.timeout > 0 {
		re.MatchTimeout = o.timeout
	}
	return re, nil
}

// anchors returns the variants used by Matches and LookingAt. Wrapping the
// expression in a non-capturing group keeps group numbers unchanged.
func (p *Pattern) anchors() (whole, prefix *regexp2.Regexp, err error) {
	p.anchorOnce.Do(func() {
		p.anchored, p.anchorErr = compile(`\A(?:`+p.expr+`)\z`, p.opts)
		if p.anchorErr != nil {
			return
		}
		p.prefix, p.anchorErr = compile(`\A(?:`+p.expr+`)`, p.opts)
	})
	if p.anchorErr != nil {
		return nil, nil, fmt.Errorf("regexkit: anchor %q: %w", p.expr, p.anchorErr)
	}
	return p.anchored, p.prefix, nil
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// GroupCount returns the number of capturing groups, not counting group 0.
func (p *Pattern) GroupCount() int {
	return p.count
}

// GroupNames returns the named groups ordered by group number.
func (p *Pattern) GroupNames() []string {
	names := make([]string, 0, len(p.names))
	for i := 1; i <= p.count; i++ {
		for name, n := range p.names {
			if n == i {
				names = append(names, name)
			}
		}
	}
	return names
}

// GroupName returns the name of group i, or "" when it is unnamed.
func (p *Pattern) GroupName(i int) string {
	for name, n := range p.names {
		if n == i {
			return name
		}
	}
	return ""
}

// Matcher returns a new matcher over input.
func (p *Pattern) Matcher(input string) *Matcher {
	m := &Matcher{pattern: p}
	m.ResetInput(input)
	return m
}

// Matches reports whether the whole of s matches the pattern.
func (p *Pattern) Matches(s string) (bool, error) {
	return p.Matcher(s).Matches()
}

// Contains reports whether any substring of s matches the pattern.
func (p *Pattern) Contains(s string) (bool, error) {
	return p.Matcher(s).Find()
}

// FindAll returns the text of every non-overlapping match.
func (p *Pattern) FindAll(s string) ([]string, error) {
	matches, err := p.FindAllMatches(s)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out, nil
}

// FindAllMatches returns every non-overlapping match with its groups.
func (p *Pattern) FindAllMatches(s string) ([]Match, error) {
	var out []Match
	m := p.Matcher(s)
	for {
		ok, err := m.Find()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, m.snapshot())
	}
}

// ReplaceAll replaces every match with the expansion of template, which may
// refer to groups as $1, ${1}, $name or ${name}.
func (p *Pattern) ReplaceAll(s, template string) (string, error) {
	t, err := replace.Parse(template)
	if err != nil {
		return "", err
	}
	return p.replace(s, -1, func(_ int, m Match) (string, bool) {
		return t.Expand(m), true
	})
}

// ReplaceFirst replaces only the first match.
func (p *Pattern) ReplaceFirst(s, template string) (string, error) {
	t, err := replace.Parse(template)
	if err != nil {
		return "", err
	}
	return p.replace(s, 1, func(_ int, m Match) (string, bool) {
		return t.Expand(m), true
	})
}

// ReplaceAllFunc replaces every match with the value returned by fn.
func (p *Pattern) ReplaceAllFunc(s string, fn func(Match) string) (string, error) {
	return p.replace(s, -1, func(_ int, m Match) (string, bool) {
		return fn(m), true
	})
}

// replace walks matches left to right, copying unmatched text and the
// replacement chosen by fn. fn receives the 1-based match ordinal and may
// decline to replace a match, in which case the original text is kept.
// A negative limit visits every match.
func (p *Pattern) replace(s string, limit int, fn func(n int, m Match) (string, bool)) (string, error) {
	mt := p.Matcher(s)
	var b strings.Builder
	last := 0
	for n := 1; limit < 0 || n <= limit; n++ {
		ok, err := mt.Find()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		m := mt.snapshot()
		repl, ok := fn(n, m)
		if !ok {
			continue
		}
		b.WriteString(mt.text(last, m.Start))
		b.WriteString(repl)
		last = m.End
	}
	b.WriteString(mt.text(last, len(mt.input)))
	return b.String(), nil
}

// Split splits s around matches of the pattern. A zero-width match at the
// start of s never produces a leading empty string and trailing empty
// strings are removed. If nothing matches, the result is s itself.
func (p *Pattern) Split(s string) ([]string, error) {
	mt := p.Matcher(s)
	var parts []string
	last := 0
	matched := false
	for {
		ok, err := mt.Find()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		m := mt.snapshot()
		if m.Start == 0 && m.End == 0 {
			continue
		}
		matched = true
		parts = append(parts, mt.text(last, m.Start))
		last = m.End
	}
	if !matched {
		return []string{s}, nil
	}
	parts = append(parts, mt.text(last, len(mt.input)))
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// MatchString compiles expr and reports whether the whole of s matches it.
// Every call compiles the expression again; reuse a Pattern when the same
// expression is applied to many inputs.
func MatchString(expr, s string) (bool, error) {
	p, err := Compile(expr)
	if err != nil {
		return false, err
	}
	return p.Matches(s)
}

// ReplaceAllString compiles expr and replaces every match in s.
func ReplaceAllString(expr, s, template string) (string, error) {
	p, err := Compile(expr)
	if err != nil {
		return "", err
	}
	return p.ReplaceAll(s, template)
}

// ReplaceFirstString compiles expr and replaces the first match in s.
func ReplaceFirstString(expr, s, template string) (string, error) {
	p, err := Compile(expr)
	if err != nil {
		return "", err
	}
	return p.ReplaceFirst(s, template)
}

// SplitString compiles expr and splits s around its matches.
func SplitString(expr, s string) ([]string, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Split(s)
}
