package regex

import (
	"context"
	"io"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// Lookaround tutorial inputs.
var (
	PhoneNumbers = []string{"919740467017", "46160861608", "1234488844888", "9199931509", "95432154321", "91987654321000"}

	LookbehindEmails = []string{
		"amans77@gmail.com", "77amans@gmail.com", "aman.soni@gmail.com", "green.star@yahoo.co",
		"amansoni@wiki.org", "aman@lenovo", "aman@.com", "aman.soni.com",
	}

	MediaFiles = []string{
		"avengers.mov", "sunrise.jpeg", "tulips.jpg", "recording123.mp4",
		"beat it.mp3", "cat.gif.png", "random.jpg.jpeg.animation",
	}

	FileNames = []string{
		"avengers.mov", "troy.movie", "video.mpeg", "sunrise.jpeg", "tulips.jpg", "recording123.mp4",
		"....beatit.mp3", "beat .it.mp3", "beat it.mp3", "cat.gif.png", "random.animation",
	}

	// Lines is searched line by line to contrast an immediate negative
	// lookahead with one that scans the rest of the line.
	Lines = "aabbccddeeffgghhiijjkk\n\n" +
		"aabbcc123ddeeffgghhiijjkk\n\n" +
		"aabb123ccddeeffgghhiijjkk\n\n" +
		"aabbccddee123ffgghhiijjkk\n\n" +
		"aabbccddeeffgghhiijjkk"
)

var (
	// a 1-3 digit country code followed by exactly ten digits
	countryCode = regexkit.MustCompile(`^\d{1,3}(?=\d{10}$)`)
	// the subdomain, provided "@domain." comes right before it
	subdomain = regexkit.MustCompile(`(?<=@\w{1,10}\.)\w{1,3}`)
	// a file name whose dot is not followed by jpg or jpeg
	nonImage = regexkit.MustCompile(`([a-z\d][\w\. ]*)\.(?!jpg|jpeg)`)
	// an extension with no non-word character anywhere before it
	extension = regexkit.MustCompile(`(?<!\W.{0,100})\.[a-z0-9]{3,4}$`)

	bbNoDigit     = regexkit.MustCompile(`bb(?!\d+)`, regexkit.WithMultiline())
	bbNoDigitWord = regexkit.MustCompile(`bb(?!\w+\d+)`, regexkit.WithMultiline())
)

// RunLookarounds demonstrates the four lookaround forms. One matcher per
// pattern is rebound to each input instead of being recreated.
func RunLookarounds(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	err := eachFind(countryCode, PhoneNumbers, 0, func(s, g string, ok bool) {
		if ok {
			p.Printf("%s\t is a valid phone number with country code %s\n", s, g)
		} else {
			p.Printf("%s\t is not a valid phone number\n", s)
		}
	})
	if err != nil {
		return err
	}
	p.Rule()

	err = eachFind(subdomain, LookbehindEmails, 0, func(s, g string, ok bool) {
		if ok {
			p.Printf("%s\t is a valid email id with sub domain %s\n", s, g)
		} else {
			p.Printf("%s\t is not a valid email id\n", s)
		}
	})
	if err != nil {
		return err
	}
	p.Rule()

	err = eachFind(nonImage, MediaFiles, 1, func(s, g string, ok bool) {
		if ok {
			p.Printf("%s\t\t is a non-image file with file name: %s\n", s, g)
		} else {
			p.Printf("%s\t\t is an image file\n", s)
		}
	})
	if err != nil {
		return err
	}
	p.Rule()

	if err := lineLookahead(p); err != nil {
		return err
	}
	p.Rule()

	err = eachFind(extension, FileNames, 0, func(s, g string, ok bool) {
		if ok {
			p.Printf("%s\t\t is a valid file name with extension: \t%s\n", s, g)
		} else {
			p.Printf("%s\t\t is not a valid file name\n", s)
		}
	})
	if err != nil {
		return err
	}
	return p.Err()
}

// eachFind runs one Find per input on a single reused matcher and reports
// group n of the match.
func eachFind(pattern *regexkit.Pattern, inputs []string, n int, report func(s, group string, ok bool)) error {
	m := pattern.Matcher("")
	for _, s := range inputs {
		m.ResetInput(s)
		ok, err := m.Find()
		if err != nil {
			return err
		}
		g := ""
		if ok {
			if g, err = m.Group(n); err != nil {
				return err
			}
		}
		report(s, g, ok)
	}
	return nil
}

// lineLookahead swaps the pattern of a live matcher and rewinds it.
func lineLookahead(p *demo.Printer) error {
	m := bbNoDigit.Matcher(Lines)
	printAll := func() error {
		for {
			ok, err := m.Find()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			g, _ := m.Group(0)
			p.Println(g)
		}
	}
	if err := printAll(); err != nil {
		return err
	}
	p.Println("--------------")
	m.UsePattern(bbNoDigitWord).Reset()
	return printAll()
}
