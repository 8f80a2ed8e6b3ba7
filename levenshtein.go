package strdist

// Levenshtein scores strings by classic edit distance: the minimum number of
// single-rune insertions, deletions and substitutions, normalized to
// 1 - distance/max(len(s1), len(s2)).
type Levenshtein struct{}

// NewLevenshtein creates a Levenshtein metric.
func NewLevenshtein() Levenshtein { return Levenshtein{} }

// Kind implements Metric.
func (Levenshtein) Kind() Kind { return KindLevenshtein }

// Similarity implements Metric. Levenshtein similarity is symmetric.
func (Levenshtein) Similarity(s1, s2 *string) float64 {
	if sim, done := baseSimilarity(s1, s2); done {
		return sim
	}

	a, b := []rune(*s1), []rune(*s2)
	// The rows are sized by the shorter string; the result is unchanged
	// because edit distance is symmetric.
	if len(a) > len(b) {
		a, b = b, a
	}

	p := make([]int, len(a)+1) // previous row
	d := make([]int, len(a)+1) // row being computed
	for i := range p {
		p[i] = i
	}

	for j := 1; j <= len(b); j++ {
		d[0] = j
		for i := 1; i <= len(a); i++ {
			c := 0
			if a[i-1] != b[j-1] {
				c = 1
			}
			// insertion, deletion, substitution
			d[i] = min(d[i-1]+1, p[i]+1, p[i-1]+c)
		}
		p, d = d, p
	}

	return 1 - float64(p[len(a)])/float64(len(b))
}
