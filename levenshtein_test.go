package strdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSimilarity(t *testing.T) {
	m := NewLevenshtein()

	tests := []struct {
		name     string
		s1, s2   string
		expected float64
	}{
		{"KittenSitting", "kitten", "sitting", 1 - 3.0/7}, // distance 3
		{"FlawLawn", "flaw", "lawn", 0.5},                 // distance 2
		{"SingleSubstitution", "book", "back", 0.5},       // distance 2
		{"OneInsert", "kitten", "kittens", 1 - 1.0/7},
		{"Disjoint", "abc", "xyz", 0},
		{"Runes", "日本語", "日本", 1 - 1.0/3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, m.Similarity(sp(tt.s1), sp(tt.s2)), 1e-9)
		})
	}
}

func TestLevenshteinSymmetry(t *testing.T) {
	m := NewLevenshtein()

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"a", "abcdef"},
		{"flaw", "lawn"},
		{"", "nonempty"},
		{"日本語", "日本"},
	}
	for _, p := range pairs {
		assert.Equal(t, m.Similarity(sp(p[0]), sp(p[1])), m.Similarity(sp(p[1]), sp(p[0])),
			"%q vs %q", p[0], p[1])
	}
}

func TestLevenshteinReflexivity(t *testing.T) {
	m := NewLevenshtein()
	for _, s := range []string{"", "a", "kitten", "日本語テキスト"} {
		assert.Equal(t, 1.0, m.Similarity(sp(s), sp(s)), "%q", s)
	}
}
