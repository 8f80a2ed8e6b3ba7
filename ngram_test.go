package strdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNGramShortInputFallback(t *testing.T) {
	bi := DefaultNGram()

	tests := []struct {
		name     string
		s1, s2   string
		expected float64
	}{
		{"OnePositionMatch", "a", "ab", 0.5}, // a==a over max length 2
		{"NoPositionMatch", "b", "ab", 0},
		{"SingleRunes", "a", "b", 0},
		{"LongerGap", "a", "abcd", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, bi.Similarity(sp(tt.s1), sp(tt.s2)), 1e-9)
		})
	}

	t.Run("Trigram", func(t *testing.T) {
		tri, err := NewNGram(3)
		require.NoError(t, err)
		// Both below the window size: positional matching applies.
		assert.InDelta(t, 0.0, tri.Similarity(sp("ab"), sp("ba")), 1e-9)
		assert.InDelta(t, 0.5, tri.Similarity(sp("ab"), sp("ac")), 1e-9)
	})
}

func TestNGramWindowed(t *testing.T) {
	bi := DefaultNGram()

	tests := []struct {
		name     string
		s1, s2   string
		expected float64
	}{
		{"SharedPrefix", "aa", "ab", 0.75},
		{"Swapped", "ab", "ba", 0},
		{"OneAppended", "ab", "abc", 2.0 / 3},
		{"Disjoint", "aaaa", "bbbb", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, bi.Similarity(sp(tt.s1), sp(tt.s2)), 1e-9)
		})
	}
}

func TestNGramDiscount(t *testing.T) {
	bi := DefaultNGram()

	// Strings sharing no runes must not be inflated by padding-vs-padding
	// window overlap: they score 0, strictly below any all-shared pair.
	disjoint := bi.Similarity(sp("aaaa"), sp("bbbb"))
	shared := bi.Similarity(sp("aaaa"), sp("aaaa"))
	assert.Equal(t, 0.0, disjoint)
	assert.Less(t, disjoint, shared)
}

func TestNGramReflexivity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		m, err := NewNGram(n)
		require.NoError(t, err)
		for _, s := range []string{"", "a", "kitten", "日本語テキスト"} {
			assert.Equal(t, 1.0, m.Similarity(sp(s), sp(s)), "n=%d %q", n, s)
		}
	}
}

func TestNGramSymmetry(t *testing.T) {
	// The window of the first string ending at position i and the window of
	// the second ending at position j are built by the same left-padding
	// rule, so the cost matrix and the final score are symmetric.
	bi := DefaultNGram()

	pairs := [][2]string{
		{"ab", "abcd"},
		{"ba", "aaa"},
		{"kitten", "sitting"},
		{"a", "ab"},
	}
	for _, p := range pairs {
		assert.InDelta(t, bi.Similarity(sp(p[0]), sp(p[1])), bi.Similarity(sp(p[1]), sp(p[0])), 1e-12,
			"%q vs %q", p[0], p[1])
	}
}

func TestNGramUnigram(t *testing.T) {
	// n=1 has no padding at all; every window is a single rune and the
	// recurrence degenerates to classic Levenshtein.
	uni, err := NewNGram(1)
	require.NoError(t, err)
	lev := NewLevenshtein()

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"abc", "xyz"},
	}
	for _, p := range pairs {
		assert.InDelta(t, lev.Similarity(sp(p[0]), sp(p[1])), uni.Similarity(sp(p[0]), sp(p[1])), 1e-9,
			"%q vs %q", p[0], p[1])
	}
}
