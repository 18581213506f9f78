package regex

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// Formulae inputs.
var (
	Occurrences = "abc xyz abc pqr abc"
	Repeated    = "This is is a sample sample text that that repeats words."
	Markup      = "<b>bold</b> and <i>italic</i>"
	Digits      = "12345"
	ISODate     = "2021-03-14"
	Tags        = []string{"<tag>", "tag", "<tag", "tag>"}
)

// Occurrence formulae over Occurrences. Each finds "abc" by position
// relative to the other occurrences using unbounded lookarounds.
var OccurrenceFormulae = []struct {
	Name    string
	Pattern string
}{
	{"first match", `(?<!abc.*)abc`},
	{"all but first", `(?<=abc.*)abc`},
	{"last match", `abc(?!.*abc)`},
	{"all but last", `abc(?=.*abc)`},
}

// NthPattern captures the third "abc": two lazy skips, then the capture.
const NthPattern = `(?:.*?abc){2}.*?(abc)`

// DuplicateWords matches a word immediately repeated after whitespace.
const DuplicateWords = `\b(\w+)\s+\1\b`

// RunFormulae walks the advanced constructs: negated sets, greedy and lazy
// quantifiers, non-capturing and named groups, positional formulae,
// backreferences, conditionals and atomic groups.
func RunFormulae(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	sections := []func(*demo.Printer) error{
		negatedSet,
		greedyLazy,
		nonCapturing,
		positional,
		namedGroups,
		duplicates,
		conditional,
		atomic,
	}
	for _, section := range sections {
		if err := section(p); err != nil {
			return err
		}
		p.Rule()
	}
	return p.Err()
}

func printFound(p *demo.Printer, label string, pattern *regexkit.Pattern, s string) error {
	found, err := pattern.FindAll(s)
	if err != nil {
		return err
	}
	p.Printf("%-16s %-12s %q\n", label, pattern, found)
	return nil
}

func negatedSet(p *demo.Printer) error {
	p.Println("negated set: runs of characters that are not vowels or spaces")
	return printFound(p, "negated", regexkit.MustCompile(`[^aeiou\s]+`), "regex is fun")
}

func greedyLazy(p *demo.Printer) error {
	for _, expr := range []string{`\d{1,3}`, `\d{1,3}?`} {
		if err := printFound(p, "digits", regexkit.MustCompile(expr), Digits); err != nil {
			return err
		}
	}
	for _, expr := range []string{`<.+>`, `<.+?>`} {
		if err := printFound(p, "markup", regexkit.MustCompile(expr), Markup); err != nil {
			return err
		}
	}
	return nil
}

// nonCapturing shows that (?:...) groups without adding a group number.
func nonCapturing(p *demo.Printer) error {
	for _, expr := range []string{`(\d{3})-(\d{4})`, `(?:\d{3})-(\d{4})`} {
		m := regexkit.MustCompile(expr).Matcher("call 555-1234")
		if _, err := m.Find(); err != nil {
			return err
		}
		g, err := m.Group(1)
		if err != nil {
			return err
		}
		p.Printf("%-18s groups: %d\tgroup(1): %s\n", expr, m.GroupCount(), g)
	}
	return nil
}

func positional(p *demo.Printer) error {
	p.Println("input:", Occurrences)
	for _, f := range OccurrenceFormulae {
		matches, err := regexkit.MustCompile(f.Pattern).FindAllMatches(Occurrences)
		if err != nil {
			return err
		}
		starts := make([]string, len(matches))
		for i, m := range matches {
			starts[i] = strconv.Itoa(m.Start)
		}
		p.Printf("%-14s %-16s at %s\n", f.Name, f.Pattern, strings.Join(starts, ", "))
	}

	m, ok, err := regexkit.MustCompile(NthPattern).FindNth(Occurrences, 1)
	if err != nil {
		return err
	}
	if ok {
		start, _ := m.Span(1)
		p.Printf("%-14s %-16s at %d\n", "third match", NthPattern, start)
	}
	return nil
}

func namedGroups(p *demo.Printer) error {
	date := regexkit.MustCompile(`(?<year>\d{4})-(?<month>\d{2})-(?<day>\d{2})`)
	out, err := date.ReplaceAll(ISODate, "${day}/${month}/${year}")
	if err != nil {
		return err
	}
	p.Printf("%s -> %s (groups %v)\n", ISODate, out, date.GroupNames())
	return nil
}

func duplicates(p *demo.Printer) error {
	matches, err := regexkit.MustCompile(DuplicateWords).FindAllMatches(Repeated)
	if err != nil {
		return err
	}
	p.Println(Repeated)
	for _, m := range matches {
		word, _ := m.Group(1)
		p.Printf("duplicate %q at %d\n", word, m.Start)
	}
	p.Println("duplicates found:", len(matches))
	return nil
}

// conditional closes the angle bracket only when one was opened: (?(1)...)
// tests whether group 1 took part.
func conditional(p *demo.Printer) error {
	tag := regexkit.MustCompile(`^(<)?\w+(?(1)>)$`)
	for _, s := range Tags {
		ok, err := tag.Matches(s)
		if err != nil {
			return err
		}
		p.Printf("%-6s %t\n", s, ok)
	}
	return nil
}

// atomic shows that an atomic group never gives back what it matched.
func atomic(p *demo.Printer) error {
	for _, expr := range []string{`a(?:bc|b)c`, `a(?>bc|b)c`} {
		pattern := regexkit.MustCompile(expr)
		for _, s := range []string{"abcc", "abc"} {
			ok, err := pattern.Matches(s)
			if err != nil {
				return err
			}
			p.Printf("%-12s %-5s %t\n", expr, s, ok)
		}
	}
	return nil
}
