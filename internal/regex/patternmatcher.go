package regex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// Literals walked by the Pattern/Matcher tutorial.
var (
	// ShortEmailPattern limits the subdomain to three letters, so only a
	// prefix of "...gmail.commerce" matches.
	ShortEmailPattern = `^[a-zA-Z][a-zA-Z0-9_]*@[a-zA-Z0-9]+\.[a-zA-Z]{1,3}`

	MatcherEmails = []string{"amansoni77@gmail.com", "77amansoni@gmail.com", "amansoni77@gmail.commerce"}

	Animals = "lion#camel#cat#tiger#giraffe#bat#dog#caterpillar#elephant"

	Brands = strings.ToLower("AdidasCosCoscoNikeReebokNiviaKipsta")
)

// RunPatternMatcher compiles once and drives a Matcher through matches,
// lookingAt, find with regions, group accessors and overlapping search.
func RunPatternMatcher(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	steps := []func(*demo.Printer) error{
		matchesStable,
		lookingAt,
		findAndRegion,
		groupsAndSpans,
		groupBeforeMatch,
		overlapping,
	}
	for _, step := range steps {
		if err := step(p); err != nil {
			return err
		}
		p.Rule()
	}
	return p.Err()
}

// matchesStable shows that repeating Matches gives the same answer.
func matchesStable(p *demo.Printer) error {
	pattern, err := regexkit.Compile(ShortEmailPattern)
	if err != nil {
		return err
	}
	m := pattern.Matcher("")
	for _, s := range MatcherEmails[:2] {
		m.ResetInput(s)
		for i := 0; i < 3; i++ {
			ok, err := m.Matches()
			if err != nil {
				return err
			}
			p.Println(ok)
		}
	}
	return nil
}

// lookingAt compares whole-input and prefix matching.
func lookingAt(p *demo.Printer) error {
	pattern, err := regexkit.Compile(ShortEmailPattern)
	if err != nil {
		return err
	}
	m := pattern.Matcher("")
	for _, s := range MatcherEmails {
		m.ResetInput(s)
		whole, err := m.Matches()
		if err != nil {
			return err
		}
		prefix, err := m.LookingAt()
		if err != nil {
			return err
		}
		again, err := m.LookingAt()
		if err != nil {
			return err
		}
		p.Printf("%t\t%t\t%t\n", whole, prefix, again)
	}
	return nil
}

func findAndRegion(p *demo.Printer) error {
	m := regexkit.MustCompile(`[bc]at`).Matcher(Animals)
	for i := 0; i < 4; i++ {
		ok, err := m.Find()
		if err != nil {
			return err
		}
		p.Println(ok)
	}

	m.ResetInput("12345689")
	for i := 0; i < 2; i++ {
		ok, err := m.Find()
		if err != nil {
			return err
		}
		p.Println(ok)
	}

	m.ResetInput(Animals)
	p.Printf("Default Region: %d\t%d\n", m.RegionStart(), m.RegionEnd())
	if err := m.Region(m.RegionEnd()/2, m.RegionEnd()); err != nil {
		return err
	}
	p.Printf("Modified Region: %d\t%d\n", m.RegionStart(), m.RegionEnd())
	for {
		ok, err := m.Find()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		g, err := m.Group(0)
		if err != nil {
			return err
		}
		p.Println("found in region:", g)
	}
}

// groupsAndSpans prints every group of each match. The optional (#) group
// does not take part in the caterpillar match and is shown as absent.
func groupsAndSpans(p *demo.Printer) error {
	m := regexkit.MustCompile(`([bc]at)(#)?([a-z])`).Matcher(Animals)
	for {
		ok, err := m.Find()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		whole, err := m.Group(0)
		if err != nil {
			return err
		}
		p.Println(whole)
		p.Println(m.GroupCount())
		for i := 0; i <= m.GroupCount(); i++ {
			matched, err := m.GroupMatched(i)
			if err != nil {
				return err
			}
			if !matched {
				p.Print("<absent>\t")
				continue
			}
			g, err := m.Group(i)
			if err != nil {
				return err
			}
			p.Print(g + "\t")
		}
		p.Println()
		p.Rule()
	}

	m = regexkit.MustCompile(`cat`).Matcher(Animals)
	for {
		ok, err := m.Find()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		start, _ := m.Start(0)
		end, _ := m.End(0)
		p.Printf("Found at index: %d\tEnding at: %d\n", start, end)
	}
}

// groupBeforeMatch asks for a group before any successful find.
func groupBeforeMatch(p *demo.Printer) error {
	m := regexkit.MustCompile(`[bc]at`).Matcher("12345689")
	_, err := m.Group(0)
	if !errors.Is(err, regexkit.ErrNoMatch) {
		return fmt.Errorf("group before find: got %v, want %v", err, regexkit.ErrNoMatch)
	}
	p.Println("group() before a successful find():", err)
	return nil
}

func overlapping(p *demo.Printer) error {
	pattern := regexkit.MustCompile(`cosco`)
	n, err := pattern.CountMatches(Brands)
	if err != nil {
		return err
	}
	p.Println(n)
	n, err = pattern.CountOverlapping(Brands)
	if err != nil {
		return err
	}
	p.Println(n)
	return nil
}
