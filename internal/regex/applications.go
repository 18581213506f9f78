package regex

import (
	"context"
	"io"
	"strings"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// Application inputs.
var (
	CSV         = "Luka,Marcelo,Sergio,Cristiano,Karim,Toni"
	RomanText   = "primary classes: i ii iii iv, middle classes: vi vii viii, high school: ix xi are non-boards"
	CamelNames  = []string{"getSmallestDigit", "findGreatestCommonDivisor", "fetchTop100Results", "calculate", "log10"}
	PetSentence = "cat bat cat rat cat"
)

var (
	comma = regexkit.MustCompile(`,`)
	roman = regexkit.MustCompile(`\b([ivx]+)`)
	// a word is an optional capital followed by lower-case letters or a
	// run of digits
	camelWord = regexkit.MustCompile(`[A-Z]?([a-z]+|\d+)`)
	cat       = regexkit.MustCompile(`cat`)
)

// Limitations are the tasks a pattern alone cannot do without help from
// the host language.
var Limitations = []string{
	"overlapping matches: the cursor must be moved back by code after every match",
	"palindromes: need recursion, or an upper bound on their length",
	"all except the Nth occurrence: needs a known occurrence count, or code",
	"conditionals: not every flavour has (?(cond)yes|no); use an if instead",
}

// CSVToTSV replaces every comma with a tab.
func CSVToTSV(csv string) (string, error) {
	return comma.ReplaceAllFunc(csv, func(regexkit.Match) string { return "\t" })
}

// CapitalizeRomans upper-cases every word made only of i, v and x.
func CapitalizeRomans(text string) (string, error) {
	return roman.ReplaceAllFunc(text, func(m regexkit.Match) string {
		return strings.ToUpper(m.Text)
	})
}

// SnakeCase converts a camelCase name to snake_case, splitting digit runs
// into their own words.
func SnakeCase(name string) (string, error) {
	words, err := camelWord.FindAll(name)
	if err != nil {
		return "", err
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_"), nil
}

// RunApplications shows find-and-replace, find-and-modify and complete
// rewriting, then the limits of patterns alone.
func RunApplications(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	tsv, err := CSVToTSV(CSV)
	if err != nil {
		return err
	}
	p.Println("using func: " + tsv)
	tsv, err = comma.ReplaceAll(CSV, "\t")
	if err != nil {
		return err
	}
	p.Println("using template: " + tsv)
	p.Rule()

	corrected, err := CapitalizeRomans(RomanText)
	if err != nil {
		return err
	}
	p.Println(corrected)
	p.Rule()

	for _, name := range CamelNames {
		snake, err := SnakeCase(name)
		if err != nil {
			return err
		}
		p.Println(snake)
	}
	p.Rule()

	p.Println(PetSentence)
	for n := 1; n <= 3; n++ {
		out, err := cat.ReplaceExceptNth(PetSentence, "dog", n)
		if err != nil {
			return err
		}
		p.Printf("all but cat #%d: %s\n", n, out)
	}
	p.Rule()

	cosco := regexkit.MustCompile(`cosco`)
	plain, err := cosco.CountMatches(Brands)
	if err != nil {
		return err
	}
	overlap, err := cosco.CountOverlapping(Brands)
	if err != nil {
		return err
	}
	p.Printf("%q in %s: %d plain, %d overlapping\n", "cosco", Brands, plain, overlap)
	p.Rule()

	p.Println("Limitations:")
	for i, l := range Limitations {
		p.Printf("%d. %s\n", i+1, l)
	}
	return p.Err()
}
