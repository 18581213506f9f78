package regex

import (
	"context"
	"fmt"
	"io"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// Email literals shared by the string-method and matcher tutorials.
const (
	EmailValid   = "greenstar180@gmail.com"
	EmailInvalid = "180greenstar@gmail.com"

	// EmailPattern accepts an ID starting with a letter, a domain and a
	// subdomain.
	EmailPattern = `^[a-zA-Z][a-zA-Z0-9_]*@[a-zA-Z0-9]+\.[a-zA-Z]+`

	// EmailSeparators splits an address into ID, domain and subdomain.
	EmailSeparators = `@|\.`
)

// RunStringMethods uses the one-shot helpers, which compile the expression
// on every call, for validation, replacement and splitting.
func RunStringMethods(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	for _, s := range []string{EmailValid, EmailInvalid} {
		ok, err := regexkit.MatchString(EmailPattern, s)
		if err != nil {
			return err
		}
		p.Println(ok)
	}
	p.Rule()

	first, err := regexkit.ReplaceFirstString(`\d`, EmailValid, "#")
	if err != nil {
		return err
	}
	all, err := regexkit.ReplaceAllString(`\d`, EmailValid, "#")
	if err != nil {
		return err
	}
	p.Println("replace first digit:", first)
	p.Println("replace all digits: ", all)
	p.Rule()

	parts, err := regexkit.SplitString(EmailSeparators, EmailValid)
	if err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("split %q: got %d parts, want 3", EmailValid, len(parts))
	}
	p.Printf("ID: %s\nDomain: %s\nSubdomain: %s\n", parts[0], parts[1], parts[2])
	return p.Err()
}
