// Package strdist provides normalized string similarity metrics.
//
// All metrics implement the same capability: compare two optional strings and
// return a similarity in [0,1], where 1 means identical and 0 means wholly
// dissimilar. A nil *string is treated as absent, which is distinct from the
// empty string.
//
// # Metrics
//
//   - Levenshtein: classic insert/delete/substitute edit distance
//   - NGram: Kondrak's position-based n-gram edit distance (default n=2)
//   - JaroWinkler: Jaro similarity with a common-prefix bonus
//
// # Usage
//
//	m, _ := strdist.NewNGram(2)
//	a, b := "kitten", "sitting"
//	score := m.Similarity(&a, &b)
//
//	// Score many candidates concurrently against one query.
//	top, _ := strdist.Rank(ctx, m, "kitten", candidates, 5)
//
// # Thread Safety
//
// Metrics are immutable after construction. A single metric instance may be
// shared across goroutines without locking; every Similarity call allocates
// its own working buffers and releases them on return.
//
// # Equality
//
// Metrics are comparable value types: two metrics are equal iff they are the
// same variant with the same configuration. They can be used as map keys.
package strdist
