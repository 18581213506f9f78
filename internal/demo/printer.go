// Package demo holds the small output helper every topic writes through.
package demo

import (
	"fmt"
	"io"
	"strings"
)

// Rule is the separator printed between demo sections.
var Rule = strings.Repeat("-", 46)

// Printer writes formatted demo output and remembers the first write
// error, so a demo can print freely and check once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf writes a formatted string.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Print writes its operands with fmt.Fprint spacing.
func (p *Printer) Print(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprint(p.w, args...)
}

// Println writes its operands followed by a newline.
func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// Rule writes the section separator.
func (p *Printer) Rule() {
	p.Println(Rule)
}

// Fail records err unless an earlier error is already recorded.
func (p *Printer) Fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Err returns the first error seen.
func (p *Printer) Err() error {
	return p.err
}
