// Package regexkit is a small Pattern/Matcher API over a backtracking regex
// engine.
//
// Go's standard regexp package guarantees linear-time matching and therefore
// omits lookarounds, backreferences, atomic groups and conditionals. The
// tutorials in this module need all of them, so regexkit compiles patterns
// with github.com/dlclark/regexp2 and exposes a cursor-style Matcher:
//
//	p := regexkit.MustCompile(`[bc]at`)
//	m := p.Matcher("lion#camel#cat#tiger#giraffe#bat")
//	for {
//	    ok, err := m.Find()
//	    if err != nil || !ok {
//	        break
//	    }
//	    g, _ := m.Group(0)
//	    start, _ := m.Start(0)
//	    fmt.Println(g, start)
//	}
//
// A Matcher is bound to one pattern and one input. Group, Start and End
// return ErrNoMatch until a Find, Matches or LookingAt call succeeds. All
// offsets are character (rune) offsets into the input, not byte offsets.
//
// A Pattern is safe for concurrent use; a Matcher is not.
package regexkit
