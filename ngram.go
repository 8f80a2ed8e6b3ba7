package strdist

import "fmt"

// DefaultNGramSize is the window size used by DefaultNGram.
const DefaultNGramSize = 2

// padRune marks padding slots in n-gram windows. Decoded UTF-8 never yields
// a negative rune, so the value cannot collide with real input, including
// input that contains U+0000.
const padRune rune = -1

// NGram scores strings by Kondrak's position-based n-gram edit distance:
// the Levenshtein recurrence over n-rune windows with fractional
// substitution costs, normalized to 1 - distance/max(len(s1), len(s2)).
type NGram struct {
	n int
}

// NewNGram creates an n-gram metric with the given window size.
// Returns ErrInvalidNGramSize if n < 1.
func NewNGram(n int) (NGram, error) {
	if n < 1 {
		return NGram{}, fmt.Errorf("%w: %d", ErrInvalidNGramSize, n)
	}
	return NGram{n: n}, nil
}

// DefaultNGram returns a bigram metric.
func DefaultNGram() NGram { return NGram{n: DefaultNGramSize} }

// Size returns the window size n.
func (m NGram) Size() int { return m.n }

// Kind implements Metric.
func (m NGram) Kind() Kind { return KindNGram }

// Similarity implements Metric.
//
// Only the first argument receives an explicit padded buffer; the second's
// windows are built per position. Both constructions left-pad the same way,
// so the score is symmetric despite the asymmetric bookkeeping.
func (m NGram) Similarity(s1, s2 *string) float64 {
	if sim, done := baseSimilarity(s1, s2); done {
		return sim
	}

	src, dst := []rune(*s1), []rune(*s2)
	n := m.n
	if len(src) < n || len(dst) < n {
		return positionalSimilarity(src, dst)
	}

	// Padded copy of src: n-1 leading sentinels, so the first real rune
	// appears in as many windows as an interior one.
	sa := make([]rune, len(src)+n-1)
	for i := range sa {
		if i < n-1 {
			sa[i] = padRune
		} else {
			sa[i] = src[i-n+1]
		}
	}

	p := make([]float64, len(src)+1) // previous row
	d := make([]float64, len(src)+1) // row being computed
	for i := range p {
		p[i] = float64(i)
	}

	win := make([]rune, n) // current window of dst

	for j := 1; j <= len(dst); j++ {
		if j < n {
			// Early windows are left-padded so they are compared
			// against equally short real content.
			for i := 0; i < n-j; i++ {
				win[i] = padRune
			}
			copy(win[n-j:], dst[:j])
		} else {
			copy(win, dst[j-n:j])
		}

		d[0] = float64(j)
		for i := 1; i <= len(src); i++ {
			cost := cellCost(sa[i-1:i-1+n], win)
			d[i] = min(d[i-1]+1, p[i]+1, p[i-1]+cost)
		}
		p, d = d, p
	}

	return 1 - p[len(src)]/float64(max(len(src), len(dst)))
}

// cellCost is the fractional substitution cost of two equal-length windows:
// mismatching positions over the effective window size. A position where both
// windows hold padding is non-informative and discounted from both counts, so
// padded prefixes cannot inflate similarity between unrelated strings.
func cellCost(a, b []rune) float64 {
	mismatch, eff := 0, len(a)
	for i := range a {
		if a[i] != b[i] {
			mismatch++
		} else if a[i] == padRune {
			eff--
		}
	}
	if eff == 0 {
		// Both windows pure padding; unreachable for real input, which
		// always carries at least one non-padding rune per window.
		return 0
	}
	return float64(mismatch) / float64(eff)
}

// positionalSimilarity is the fallback for inputs shorter than the window
// size: the share of aligned positions holding the same rune.
func positionalSimilarity(a, b []rune) float64 {
	matches := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(max(len(a), len(b)))
}
