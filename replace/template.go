// Package replace parses and expands replacement templates such as
// "${day}/${month}/${year}" or "$2-$1" against the groups of a regex match.
package replace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidTemplate is wrapped by every Parse error.
var ErrInvalidTemplate = errors.New("invalid replacement template")

// SegmentType indicates the type of segment in a replacement template.
type SegmentType int

const (
	// SegmentLiteral is literal text copied as-is.
	SegmentLiteral SegmentType = iota
	// SegmentFullMatch is a reference to the whole match ($0).
	SegmentFullMatch
	// SegmentCaptureIndex is a reference to a numbered group ($1, ${12}).
	SegmentCaptureIndex
	// SegmentCaptureName is a reference to a named group ($name, ${name}).
	SegmentCaptureName
)

// Segment is one parsed piece of a template.
type Segment struct {
	Type         SegmentType
	Literal      string
	CaptureIndex int
	CaptureName  string
}

// Template is a parsed replacement template.
type Template struct {
	Original string
	Segments []Segment
}

// Groups resolves group references while a template is expanded.
// The boolean reports whether the group took part in the match.
type Groups interface {
	Group(index int) (string, bool)
	NamedGroup(name string) (string, bool)
}

// Parse parses a replacement template.
//
// Syntax:
//   - $0 or ${0}: full match
//   - $1..$99 or ${n}: group by number
//   - $name or ${name}: group by name
//   - $$: a literal dollar sign
//
// A '$' that starts none of the above is kept as literal text.
func Parse(template string) (*Template, error) {
	p := parser{src: template}
	if err := p.run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return &Template{Original: template, Segments: p.segs}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Expand renders the template for one match. References to groups that did
// not participate expand to the empty string.
func (t *Template) Expand(g Groups) string {
	var b strings.Builder
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			b.WriteString(seg.Literal)
		case SegmentFullMatch:
			s, _ := g.Group(0)
			b.WriteString(s)
		case SegmentCaptureIndex:
			s, _ := g.Group(seg.CaptureIndex)
			b.WriteString(s)
		case SegmentCaptureName:
			s, _ := g.NamedGroup(seg.CaptureName)
			b.WriteString(s)
		}
	}
	return b.String()
}

// IsLiteral reports whether the template contains no group references.
func (t *Template) IsLiteral() bool {
	for _, seg := range t.Segments {
		if seg.Type != SegmentLiteral {
			return false
		}
	}
	return true
}

// References returns the highest numbered group and the set of names the
// template refers to, so callers can validate it against a pattern.
func (t *Template) References() (maxIndex int, names []string) {
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentCaptureIndex:
			if seg.CaptureIndex > maxIndex {
				maxIndex = seg.CaptureIndex
			}
		case SegmentCaptureName:
			names = append(names, seg.CaptureName)
		}
	}
	return maxIndex, names
}

type parser struct {
	src  string
	pos  int
	lit  strings.Builder
	segs []Segment
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '$' {
			p.lit.WriteByte(c)
			p.pos++
			continue
		}
		if err := p.dollar(); err != nil {
			return fmt.Errorf("at position %d: %w", p.pos, err)
		}
	}
	p.flush()
	if p.segs == nil {
		p.segs = []Segment{}
	}
	return nil
}

// dollar handles a '$' at p.pos.
func (p *parser) dollar() error {
	rest := p.src[p.pos+1:]
	switch {
	case rest == "":
		p.lit.WriteByte('$')
		p.pos++
	case rest[0] == '$':
		p.lit.WriteByte('$')
		p.pos += 2
	case rest[0] == '{':
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return errors.New("unclosed ${")
		}
		seg, err := braced(rest[1:end])
		if err != nil {
			return err
		}
		p.emit(seg)
		p.pos += end + 2
	case rest[0] == '0':
		p.emit(Segment{Type: SegmentFullMatch})
		p.pos += 2
	case rest[0] >= '1' && rest[0] <= '9':
		n := 1
		if len(rest) > 1 && rest[1] >= '0' && rest[1] <= '9' {
			n = 2
		}
		idx, _ := strconv.Atoi(rest[:n])
		p.emit(Segment{Type: SegmentCaptureIndex, CaptureIndex: idx})
		p.pos += 1 + n
	case isNameStart(rune(rest[0])):
		n := 1
		for n < len(rest) && isNameContinue(rune(rest[n])) {
			n++
		}
		p.emit(Segment{Type: SegmentCaptureName, CaptureName: rest[:n]})
		p.pos += 1 + n
	default:
		p.lit.WriteByte('$')
		p.pos++
	}
	return nil
}

func braced(ref string) (Segment, error) {
	if ref == "" {
		return Segment{}, errors.New("empty ${}")
	}
	if ref[0] >= '0' && ref[0] <= '9' {
		idx, err := strconv.Atoi(ref)
		if err != nil || idx < 0 {
			return Segment{}, fmt.Errorf("invalid group reference ${%s}", ref)
		}
		if idx == 0 {
			return Segment{Type: SegmentFullMatch}, nil
		}
		return Segment{Type: SegmentCaptureIndex, CaptureIndex: idx}, nil
	}
	if !isIdentifier(ref) {
		return Segment{}, fmt.Errorf("invalid group name ${%s}", ref)
	}
	return Segment{Type: SegmentCaptureName, CaptureName: ref}, nil
}

func (p *parser) emit(seg Segment) {
	p.flush()
	p.segs = append(p.segs, seg)
}

func (p *parser) flush() {
	if p.lit.Len() == 0 {
		return
	}
	p.segs = append(p.segs, Segment{Type: SegmentLiteral, Literal: p.lit.String()})
	p.lit.Reset()
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 && !isNameStart(r) {
			return false
		}
		if i > 0 && !isNameContinue(r) {
			return false
		}
	}
	return s != ""
}
