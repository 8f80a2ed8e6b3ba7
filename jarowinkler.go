package strdist

import (
	"fmt"
	"math"
)

// DefaultJaroWinklerThreshold is the boost threshold used by
// DefaultJaroWinkler.
const DefaultJaroWinklerThreshold = 0.7

// JaroWinkler scores strings by Jaro similarity (matches within a sliding
// window, penalized by transpositions) with Winkler's common-prefix bonus
// applied above a configurable threshold.
type JaroWinkler struct {
	threshold float64
}

// NewJaroWinkler creates a Jaro-Winkler metric with the given boost
// threshold. Returns ErrInvalidThreshold if threshold is outside [0,1].
func NewJaroWinkler(threshold float64) (JaroWinkler, error) {
	if !(threshold >= 0 && threshold <= 1) { // also rejects NaN
		return JaroWinkler{}, fmt.Errorf("%w: %g", ErrInvalidThreshold, threshold)
	}
	return JaroWinkler{threshold: threshold}, nil
}

// DefaultJaroWinkler returns a Jaro-Winkler metric with the standard 0.7
// boost threshold.
func DefaultJaroWinkler() JaroWinkler {
	return JaroWinkler{threshold: DefaultJaroWinklerThreshold}
}

// Threshold returns the boost threshold. Scores above it receive the
// common-prefix bonus.
func (m JaroWinkler) Threshold() float64 { return m.threshold }

// Kind implements Metric.
func (m JaroWinkler) Kind() Kind { return KindJaroWinkler }

// Similarity implements Metric. Jaro-Winkler similarity is symmetric.
func (m JaroWinkler) Similarity(s1, s2 *string) float64 {
	if sim, done := baseSimilarity(s1, s2); done {
		return sim
	}

	a, b := []rune(*s1), []rune(*s2)
	matches, transpositions, prefix := jaroStats(a, b)
	if matches == 0 {
		return 0
	}

	fm := float64(matches)
	j := (fm/float64(len(a)) + fm/float64(len(b)) + (fm-float64(transpositions))/fm) / 3
	if j < m.threshold {
		return j
	}
	bonus := math.Min(0.1, 1/float64(max(len(a), len(b))))
	return j + bonus*float64(prefix)*(1-j)
}

// jaroStats counts window-bounded matches, half-transpositions between the
// matched subsequences, and the length of the common prefix.
func jaroStats(a, b []rune) (matches, transpositions, prefix int) {
	lo, hi := a, b
	if len(lo) > len(hi) {
		lo, hi = hi, lo
	}
	window := max(len(hi)/2-1, 0)

	matchIdx := make([]int, len(lo))
	for i := range matchIdx {
		matchIdx[i] = -1
	}
	matched := make([]bool, len(hi))

	for i, r := range lo {
		for x := max(i-window, 0); x < min(i+window+1, len(hi)); x++ {
			if !matched[x] && hi[x] == r {
				matchIdx[i] = x
				matched[x] = true
				matches++
				break
			}
		}
	}

	ms1 := make([]rune, 0, matches)
	for i, x := range matchIdx {
		if x != -1 {
			ms1 = append(ms1, lo[i])
		}
	}
	ms2 := make([]rune, 0, matches)
	for x, ok := range matched {
		if ok {
			ms2 = append(ms2, hi[x])
		}
	}
	diff := 0
	for i := range ms1 {
		if ms1[i] != ms2[i] {
			diff++
		}
	}
	transpositions = diff / 2

	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
	}
	return matches, transpositions, prefix
}
