package regexkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animals = "lion#camel#cat#tiger#giraffe#bat#dog#caterpillar#elephant"

// finds drains m and returns the whole-match texts.
func finds(t *testing.T, m *Matcher) []string {
	t.Helper()
	var out []string
	for {
		ok, err := m.Find()
		require.NoError(t, err)
		if !ok {
			return out
		}
		g, err := m.Group(0)
		require.NoError(t, err)
		out = append(out, g)
	}
}

func TestMatcherFindSequence(t *testing.T) {
	m := MustCompile(`[bc]at`).Matcher(animals)
	var got []bool
	for i := 0; i < 4; i++ {
		ok, err := m.Find()
		require.NoError(t, err)
		got = append(got, ok)
	}
	assert.Equal(t, []bool{true, true, true, false}, got)

	m.ResetInput("12345689")
	for i := 0; i < 2; i++ {
		ok, err := m.Find()
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestMatcherRegion(t *testing.T) {
	m := MustCompile(`[bc]at`).Matcher(animals)
	assert.Equal(t, 0, m.RegionStart())
	assert.Equal(t, 57, m.RegionEnd())

	require.NoError(t, m.Region(m.RegionEnd()/2, m.RegionEnd()))
	assert.Equal(t, 28, m.RegionStart())
	assert.Equal(t, 57, m.RegionEnd())
	assert.Equal(t, []string{"bat", "cat"}, finds(t, m))

	m.Reset()
	assert.Equal(t, 0, m.RegionStart())
	assert.Len(t, finds(t, m), 3)
}

func TestMatcherRegionBoundsAreOpaque(t *testing.T) {
	m := MustCompile(`(?<=#)cat`).Matcher(animals)
	require.NoError(t, m.Region(11, len(animals)))
	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)
	start, err := m.Start(0)
	require.NoError(t, err)
	assert.Equal(t, 37, start, "lookbehind must not see the '#' before the region")

	m = MustCompile(`^cat`).Matcher(animals)
	require.NoError(t, m.Region(11, 14))
	ok, err = m.Matches()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatcherRegionInvalid(t *testing.T) {
	m := MustCompile(`a`).Matcher("abc")
	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		assert.ErrorIs(t, m.Region(r[0], r[1]), ErrInvalidRegion)
	}
}

func TestMatcherGroups(t *testing.T) {
	m := MustCompile(`([bc]at)(#)?([a-z])`).Matcher(animals)
	assert.Equal(t, 3, m.GroupCount())

	type row struct {
		g1, g2, g3 string
		hasHash    bool
	}
	var got []row
	for {
		ok, err := m.Find()
		require.NoError(t, err)
		if !ok {
			break
		}
		var r row
		r.g1, _ = m.Group(1)
		r.g2, _ = m.Group(2)
		r.g3, _ = m.Group(3)
		r.hasHash, _ = m.GroupMatched(2)
		got = append(got, r)
	}

	assert.Equal(t, []row{
		{"cat", "#", "t", true},
		{"bat", "#", "d", true},
		{"cat", "", "e", false},
	}, got)

	start, err := m.Start(2)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Zero(t, start)
}

func TestMatcherSpans(t *testing.T) {
	m := MustCompile(`cat`).Matcher(animals)
	var spans [][2]int
	for {
		ok, err := m.Find()
		require.NoError(t, err)
		if !ok {
			break
		}
		start, _ := m.Start(0)
		end, _ := m.End(0)
		spans = append(spans, [2]int{start, end})
	}
	assert.Equal(t, [][2]int{{11, 14}, {37, 40}}, spans)
}

func TestMatcherAbsentGroupSpan(t *testing.T) {
	m := MustCompile(`a(b)?c`).Matcher("ac")
	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)

	start, err := m.Start(1)
	require.NoError(t, err)
	end, err := m.End(1)
	require.NoError(t, err)
	assert.Equal(t, -1, start)
	assert.Equal(t, -1, end)
}

func TestMatcherStateErrors(t *testing.T) {
	m := MustCompile(`(cat)`).Matcher(animals)

	_, err := m.Group(0)
	assert.ErrorIs(t, err, ErrNoMatch, "group before any attempt")

	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = m.Group(2)
	assert.ErrorIs(t, err, ErrNoSuchGroup)
	_, err = m.Group(-1)
	assert.ErrorIs(t, err, ErrNoSuchGroup)
	_, err = m.NamedGroup("missing")
	assert.ErrorIs(t, err, ErrNoSuchGroup)

	m.ResetInput("dog")
	ok, err = m.Find()
	require.NoError(t, err)
	require.False(t, ok)
	_, err = m.Group(1)
	assert.ErrorIs(t, err, ErrNoMatch, "group after a failed find")

	_, err = m.Snapshot()
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestMatcherMatchesAndLookingAt(t *testing.T) {
	p := MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*@[a-zA-Z0-9]+\.[a-zA-Z]{1,3}`)

	tests := []struct {
		input              string
		matches, lookingAt bool
	}{
		{"amansoni77@gmail.com", true, true},
		{"77amansoni@gmail.com", false, false},
		{"amansoni77@gmail.commerce", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := p.Matcher(tt.input)
			for i := 0; i < 3; i++ {
				ok, err := m.Matches()
				require.NoError(t, err)
				assert.Equal(t, tt.matches, ok, "repeated matches must be stable")
			}
			ok, err := m.LookingAt()
			require.NoError(t, err)
			assert.Equal(t, tt.lookingAt, ok)
		})
	}
}

func TestMatcherMatchesBacktracksIntoAlternation(t *testing.T) {
	ok, err := MustCompile(`a|ab`).Matches("ab")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatcherEmptyMatches(t *testing.T) {
	m := MustCompile(`a*`).Matcher("baaa")
	var spans [][2]int
	for {
		ok, err := m.Find()
		require.NoError(t, err)
		if !ok {
			break
		}
		start, _ := m.Start(0)
		end, _ := m.End(0)
		spans = append(spans, [2]int{start, end})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 4}, {4, 4}}, spans)
}

func TestMatcherNamedGroups(t *testing.T) {
	p := MustCompile(`(?<word>\w+)-(\d+)`)
	assert.Equal(t, []string{"word"}, p.GroupNames())

	m := p.Matcher("item-42")
	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)

	word, err := m.NamedGroup("word")
	require.NoError(t, err)
	assert.Equal(t, "item", word)

	// named groups are numbered after the unnamed ones
	digits, err := m.Group(1)
	require.NoError(t, err)
	assert.Equal(t, "42", digits)
}

func TestMatcherUsePattern(t *testing.T) {
	m := MustCompile(`cat`).Matcher(animals)
	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)

	m.UsePattern(MustCompile(`[bd]\w+`))
	_, err = m.Group(0)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, []string{"bat", "dog"}, finds(t, m))
}

func TestMatcherFindFrom(t *testing.T) {
	m := MustCompile(`cat`).Matcher(animals)
	ok, err := m.FindFrom(12)
	require.NoError(t, err)
	require.True(t, ok)
	start, _ := m.Start(0)
	assert.Equal(t, 37, start)

	_, err = m.FindFrom(100)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMatcherRuneOffsets(t *testing.T) {
	m := MustCompile(`ü`).Matcher("grüße")
	ok, err := m.Find()
	require.NoError(t, err)
	require.True(t, ok)
	start, _ := m.Start(0)
	assert.Equal(t, 2, start)
}
