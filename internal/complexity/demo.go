package complexity

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/KromDaniel/concepts/internal/demo"
)

// LogN is the loop bound used by the logarithmic demo.
const LogN = 100

// RunLogarithmic shows that multiplying the loop variable by a constant
// factor gives logarithmic growth whatever the factor.
func RunLogarithmic(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	for _, factor := range []int{2, 5} {
		for _, i := range LogLoop(LogN, factor) {
			p.Printf("%d ", i)
		}
		p.Println()
		p.Printf("factor %d: %d iterations, 1 + floor(log%d(%d)) = %d\n",
			factor, len(LogLoop(LogN, factor)), factor, LogN-1, PredictedIterations(LogN, factor))
		p.Rule()
	}

	p.Printf("N=1000, factor 2: %d iterations\n", len(LogLoop(1000, 2)))
	return p.Err()
}

// GrowthSizes are the input sizes tabulated by RunGrowth.
var GrowthSizes = []int{4, 8, 16, 20}

// GrowthTable returns one row per size with the iteration count of each
// complexity class, formatted with thousands separators.
func GrowthTable(sizes []int) (headers []string, rows [][]string) {
	headers = []string{"N", "log log N", "√N", "log N", "N", "N log N", "N log² N", "N²", "2^N", "N!"}
	for _, n := range sizes {
		counts := []int64{
			int64(n),
			int64(LogLogLoop(n)),
			int64(SqrtLoop(n)),
			int64(len(LogLoop(n, 2))),
			int64(Linear(n)),
			int64(Linearithmic(n)),
			int64(LinearithmicSquared(n)),
			int64(Quadratic(n)),
			int64(1) << n,
			Factorial(n),
		}
		row := make([]string, len(counts))
		for i, c := range counts {
			row[i] = humanize.Comma(c)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// RunGrowth tabulates iteration counts per class, then shows the
// algorithms behind the N log N, c^N and N! rows.
func RunGrowth(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	headers, rows := GrowthTable(GrowthSizes)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	p.Println(t.String())
	p.Rule()

	input := []int{38, 27, 43, 3, 9, 82, 10, 5}
	sorted, comparisons := MergeSort(input)
	p.Println("merge sort:", input, "->", sorted)
	p.Printf("%d comparisons for N=%d (N log N = %d)\n", comparisons, len(input), Linearithmic(len(input)))
	p.Rule()

	letters := []string{"a", "b", "c"}
	subsets := PowerSet(letters)
	p.Printf("power set of %v has %d subsets:\n", letters, len(subsets))
	for _, s := range subsets {
		p.Println(formatSet(s))
	}
	p.Rule()

	perms := Permutations(letters)
	p.Printf("%v has %d permutations:\n", letters, len(perms))
	for _, s := range perms {
		p.Println(formatSet(s))
	}
	return p.Err()
}

func formatSet(s []string) string {
	return "{" + strings.Join(s, ", ") + "} (" + strconv.Itoa(len(s)) + ")"
}
