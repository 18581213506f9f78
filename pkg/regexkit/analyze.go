package regexkit

import (
	"github.com/KromDaniel/concepts/internal/analysis"
)

// Analysis contains the structural report for a pattern.
type Analysis = analysis.Report

// Analyze reports which features a pattern uses, whether Go's standard
// regexp package could run it and whether it nests quantifiers. It returns
// an error when the pattern does not compile.
//
// Example:
//
//	a, err := regexkit.Analyze(`(?<=@\w{1,10}\.)\w{1,3}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Features)      // [CharClass Lookaround Quantifiers]
//	fmt.Println(a.RE2Compatible) // false
func Analyze(pattern string) (*Analysis, error) {
	return analysis.Analyze(pattern)
}

// Analyze reports on the pattern's own expression.
func (p *Pattern) Analyze() (*Analysis, error) {
	return analysis.Analyze(p.expr)
}
