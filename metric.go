package strdist

import "fmt"

// Kind identifies a metric variant.
type Kind int

const (
	KindLevenshtein Kind = iota
	KindNGram
	KindJaroWinkler
)

func (k Kind) String() string {
	switch k {
	case KindLevenshtein:
		return "Levenshtein"
	case KindNGram:
		return "NGram"
	case KindJaroWinkler:
		return "JaroWinkler"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Metric computes a normalized similarity between two optional strings.
// Implementations are immutable value types, safe for concurrent use.
type Metric interface {
	// Similarity returns a score in [0,1]. A nil argument is treated as
	// absent: two absent strings are identical (1), one absent string
	// matches nothing (0). No input produces an error.
	Similarity(s1, s2 *string) float64
	// Kind reports the metric variant.
	Kind() Kind
}

// ByName returns a default-configured built-in metric by its stable name.
//
// This is used for self-describing persistence formats that store the metric
// name in their header; configured values travel through the codec package.
func ByName(name string) (Metric, bool) {
	switch name {
	case "levenshtein":
		return NewLevenshtein(), true
	case "ngram":
		return DefaultNGram(), true
	case "jaro-winkler":
		return DefaultJaroWinkler(), true
	default:
		return nil, false
	}
}

// baseSimilarity resolves the part of the contract every metric shares:
// absent and empty inputs. done is false when the variant's own algorithm
// must run; both strings are then non-nil, non-empty and unequal.
func baseSimilarity(s1, s2 *string) (sim float64, done bool) {
	switch {
	case s1 == nil && s2 == nil:
		return 1, true
	case s1 == nil || s2 == nil:
		return 0, true
	case *s1 == *s2:
		return 1, true
	case len(*s1) == 0 || len(*s2) == 0:
		return 0, true
	}
	return 0, false
}
