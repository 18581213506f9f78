package complexity

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLoop(t *testing.T) {
	tests := []struct {
		n, factor int
		want      []int
	}{
		{100, 2, []int{1, 2, 4, 8, 16, 32, 64}},
		{100, 5, []int{1, 5, 25}},
		{1, 2, nil},
		{2, 2, []int{1}},
		{100, 1, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, LogLoop(tt.n, tt.factor)); diff != "" {
			t.Errorf("LogLoop(%d, %d) mismatch (-want +got):\n%s", tt.n, tt.factor, diff)
		}
	}
	assert.Len(t, LogLoop(1000, 2), 10)
}

func TestPredictedIterationsMatchesLoop(t *testing.T) {
	for _, factor := range []int{2, 3, 5, 10} {
		for n := 0; n <= 2000; n++ {
			require.Equal(t, len(LogLoop(n, factor)), PredictedIterations(n, factor), "n=%d factor=%d", n, factor)
		}
	}
}

func TestCounters(t *testing.T) {
	assert.Equal(t, 16, Linear(16))
	assert.Equal(t, 16*4, Linearithmic(16))
	assert.Equal(t, 4*4, NestedLogLoops(16))
	assert.Equal(t, 16*16, LinearithmicSquared(16))
	assert.Equal(t, 256, Quadratic(16))
	assert.Equal(t, 3, SqrtLoop(16))
	assert.Equal(t, 2, LogLogLoop(16))
	assert.Equal(t, int64(1), Factorial(0))
	assert.Equal(t, int64(120), Factorial(5))
	assert.Equal(t, int64(2432902008176640000), Factorial(20))
}

func TestMergeSort(t *testing.T) {
	input := []int{38, 27, 43, 3, 9, 82, 10, 5}
	sorted, comparisons := MergeSort(input)
	assert.Equal(t, []int{3, 5, 9, 10, 27, 38, 43, 82}, sorted)
	assert.Equal(t, []int{38, 27, 43, 3, 9, 82, 10, 5}, input, "input is not modified")
	assert.Positive(t, comparisons)
	assert.LessOrEqual(t, comparisons, Linearithmic(len(input)))

	words, _ := MergeSort([]string{"pear", "apple", "fig"})
	assert.Equal(t, []string{"apple", "fig", "pear"}, words)

	empty, n := MergeSort([]int(nil))
	assert.Empty(t, empty)
	assert.Zero(t, n)
}

func TestPowerSet(t *testing.T) {
	got := PowerSet([]string{"a", "b", "c"})
	want := [][]string{nil, {"a"}, {"b"}, {"a", "b"}, {"c"}, {"a", "c"}, {"b", "c"}, {"a", "b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PowerSet mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, PowerSet(make([]int, 10)), 1024)
}

func TestPermutations(t *testing.T) {
	got := Permutations([]int{1, 2, 3})
	want := [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Permutations mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, Permutations([]int{1, 2, 3, 4, 5}), int(Factorial(5)))
}

func TestGrowthTable(t *testing.T) {
	headers, rows := GrowthTable([]int{16})
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(headers))
	assert.Equal(t, []string{"16", "2", "3", "4", "16", "64", "256", "256", "65,536", "20,922,789,888,000"}, rows[0])
}

func TestRunLogarithmic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunLogarithmic(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "1 2 4 8 16 32 64 \n")
	assert.Contains(t, out, "factor 2: 7 iterations")
	assert.Contains(t, out, "1 5 25 \n")
	assert.Contains(t, out, "factor 5: 3 iterations")
	assert.Contains(t, out, "N=1000, factor 2: 10 iterations")
}

func TestRunGrowth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunGrowth(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "2,432,902,008,176,640,000")
	assert.Contains(t, out, "power set of [a b c] has 8 subsets")
	assert.Contains(t, out, "[a b c] has 6 permutations")
	assert.Contains(t, out, "{a, b, c} (3)")
}
