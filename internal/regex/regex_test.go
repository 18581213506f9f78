package regex

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

func run(t *testing.T, fn func(context.Context, io.Writer) error) string {
	t.Helper()
	ctx := demo.WithSettings(context.Background(), demo.Settings{Rounds: 2})
	var buf bytes.Buffer
	require.NoError(t, fn(ctx, &buf))
	return buf.String()
}

func TestVowelCounts(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Elephant", 3},
		{"Cats & Dogs", 2},
		{"aaa bbb iii", 6},
		{"123  abe 123", 2},
		{"aman#soni", 4},
		{"", 0},
		{"AEIOU", 5},
		{"rhythm", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, VowCount(tt.in))
			got, err := VowCountRgx(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunVowels(t *testing.T) {
	out := run(t, RunVowels)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(VowelWords)+1)
	assert.Equal(t, "String\t\t\tvowCount\tvowCountRgx", lines[0])
	assert.Equal(t, []string{"Elephant", "3", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"aman#soni", "4", "4"}, strings.Fields(lines[5]))
}

func TestRunStringMethods(t *testing.T) {
	out := run(t, RunStringMethods)
	assert.True(t, strings.HasPrefix(out, "true\nfalse\n"), out)
	assert.Contains(t, out, "replace first digit: greenstar#80@gmail.com")
	assert.Contains(t, out, "replace all digits:  greenstar###@gmail.com")
	assert.Contains(t, out, "ID: greenstar180\nDomain: gmail\nSubdomain: com\n")
}

func TestRunPatternMatcher(t *testing.T) {
	out := run(t, RunPatternMatcher)
	sections := strings.Split(out, demo.Rule+"\n")

	assert.Equal(t, "true\ntrue\ntrue\nfalse\nfalse\nfalse\n", sections[0])
	assert.Equal(t, "true\ttrue\ttrue\nfalse\tfalse\tfalse\nfalse\ttrue\ttrue\n", sections[1])
	assert.Equal(t, "true\ntrue\ntrue\nfalse\nfalse\nfalse\n"+
		"Default Region: 0\t57\nModified Region: 28\t57\n"+
		"found in region: bat\nfound in region: cat\n", sections[2])

	assert.Equal(t, "cat#t\n3\ncat#t\tcat\t#\tt\t\n", sections[3])
	assert.Equal(t, "bat#d\n3\nbat#d\tbat\t#\td\t\n", sections[4])
	assert.Equal(t, "cate\n3\ncate\tcat\t<absent>\te\t\n", sections[5])
	assert.Equal(t, "Found at index: 11\tEnding at: 14\nFound at index: 37\tEnding at: 40\n", sections[6])

	assert.Contains(t, sections[7], regexkit.ErrNoMatch.Error())
	assert.Equal(t, "1\n2\n", sections[8])
}

func TestRunLookarounds(t *testing.T) {
	out := run(t, RunLookarounds)
	for _, want := range []string{
		"919740467017\t is a valid phone number with country code 91\n",
		"46160861608\t is a valid phone number with country code 4\n",
		"1234488844888\t is a valid phone number with country code 123\n",
		"9199931509\t is not a valid phone number\n",
		"95432154321\t is a valid phone number with country code 9\n",
		"91987654321000\t is not a valid phone number\n",

		"amans77@gmail.com\t is a valid email id with sub domain com\n",
		"green.star@yahoo.co\t is a valid email id with sub domain co\n",
		"amansoni@wiki.org\t is a valid email id with sub domain org\n",
		"aman@lenovo\t is not a valid email id\n",
		"aman@.com\t is not a valid email id\n",
		"aman.soni.com\t is not a valid email id\n",

		"avengers.mov\t\t is a non-image file with file name: avengers\n",
		"sunrise.jpeg\t\t is an image file\n",
		"tulips.jpg\t\t is an image file\n",
		"beat it.mp3\t\t is a non-image file with file name: beat it\n",
		"cat.gif.png\t\t is a non-image file with file name: cat.gif\n",
		"random.jpg.jpeg.animation\t\t is a non-image file with file name: random.jpg.jpeg\n",

		"avengers.mov\t\t is a valid file name with extension: \t.mov\n",
		"troy.movie\t\t is not a valid file name\n",
		"video.mpeg\t\t is a valid file name with extension: \t.mpeg\n",
		"....beatit.mp3\t\t is not a valid file name\n",
		"beat .it.mp3\t\t is not a valid file name\n",
		"cat.gif.png\t\t is not a valid file name\n",
		"random.animation\t\t is not a valid file name\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "bb\nbb\nbb\nbb\n--------------\nbb\nbb\n")
}

func TestLineLookaheadCounts(t *testing.T) {
	tests := []struct {
		pattern *regexkit.Pattern
		want    int
	}{
		{bbNoDigit, 4},
		{bbNoDigitWord, 2},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			n, err := tt.pattern.CountMatches(Lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestOccurrenceFormulae(t *testing.T) {
	want := map[string][]int{
		"first match":   {0},
		"all but first": {8, 16},
		"last match":    {16},
		"all but last":  {0, 8},
	}
	for _, f := range OccurrenceFormulae {
		t.Run(f.Name, func(t *testing.T) {
			matches, err := regexkit.MustCompile(f.Pattern).FindAllMatches(Occurrences)
			require.NoError(t, err)
			var starts []int
			for _, m := range matches {
				starts = append(starts, m.Start)
			}
			if diff := cmp.Diff(want[f.Name], starts); diff != "" {
				t.Errorf("starts mismatch (-want +got):\n%s", diff)
			}
		})
	}

	m, ok, err := regexkit.MustCompile(NthPattern).FindNth(Occurrences, 1)
	require.NoError(t, err)
	require.True(t, ok)
	start, end := m.Span(1)
	assert.Equal(t, 16, start)
	assert.Equal(t, 19, end)
}

func TestDuplicateWords(t *testing.T) {
	matches, err := regexkit.MustCompile(DuplicateWords).FindAllMatches(Repeated)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	var words []string
	for _, m := range matches {
		w, ok := m.Group(1)
		require.True(t, ok)
		words = append(words, w)
	}
	assert.Equal(t, []string{"is", "sample", "that"}, words)
	assert.Equal(t, 5, matches[0].Start)
}

func TestRunFormulae(t *testing.T) {
	out := run(t, RunFormulae)
	for _, want := range []string{
		`["r" "g" "x" "s" "f" "n"]`,
		`["123" "45"]`,
		`["1" "2" "3" "4" "5"]`,
		`["<b>bold</b> and <i>italic</i>"]`,
		`["<b>" "</b>" "<i>" "</i>"]`,
		"groups: 2\tgroup(1): 555",
		"groups: 1\tgroup(1): 1234",
		"2021-03-14 -> 14/03/2021 (groups [year month day])",
		"duplicates found: 3",
		"third match",
		"<tag>  true\n",
		"tag    true\n",
		"<tag   false\n",
		"tag>   false\n",
		"a(?>bc|b)c   abcc  true\n",
		"a(?>bc|b)c   abc   false\n",
		"a(?:bc|b)c   abc   true\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestApplications(t *testing.T) {
	tsv, err := CSVToTSV(CSV)
	require.NoError(t, err)
	assert.Equal(t, "Luka\tMarcelo\tSergio\tCristiano\tKarim\tToni", tsv)

	romans, err := CapitalizeRomans(RomanText)
	require.NoError(t, err)
	assert.Equal(t, "primary classes: I II III IV, middle classes: VI VII VIII, high school: IX XI are non-boards", romans)

	var snakes []string
	for _, name := range CamelNames {
		s, err := SnakeCase(name)
		require.NoError(t, err)
		snakes = append(snakes, s)
	}
	want := []string{"get_smallest_digit", "find_greatest_common_divisor", "fetch_top_100_results", "calculate", "log_10"}
	if diff := cmp.Diff(want, snakes); diff != "" {
		t.Errorf("snake case mismatch (-want +got):\n%s", diff)
	}
}

func TestRunApplications(t *testing.T) {
	out := run(t, RunApplications)
	assert.Contains(t, out, "using func: Luka\tMarcelo")
	assert.Contains(t, out, "using template: Luka\tMarcelo")
	assert.Contains(t, out, "all but cat #1: cat bat dog rat dog\n")
	assert.Contains(t, out, "all but cat #2: dog bat cat rat dog\n")
	assert.Contains(t, out, "all but cat #3: dog bat dog rat cat\n")
	assert.Contains(t, out, "1 plain, 2 overlapping")
	assert.Contains(t, out, "4. conditionals")
}

func TestSpeedCounts(t *testing.T) {
	require.Len(t, RandomStrings, 100)

	usual, err := CountRecompiling(SpecialChars, RandomStrings)
	require.NoError(t, err)
	efficient, err := CountCompiled(regexkit.MustCompile(SpecialChars), RandomStrings)
	require.NoError(t, err)
	assert.Equal(t, 51, usual)
	assert.Equal(t, usual, efficient)
}

func TestRunSpeed(t *testing.T) {
	out := run(t, RunSpeed)
	assert.Contains(t, out, "nests quantifiers")
	assert.Contains(t, out, "51 (recompiling), 51 (compiled once)")
	assert.Contains(t, out, "Rounds: 2\n")
	assert.Contains(t, out, "Usual way time taken:")
}

func TestRunSpeedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunSpeed(ctx, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
