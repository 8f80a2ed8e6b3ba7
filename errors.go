package strdist

import "errors"

var (
	// ErrInvalidNGramSize is returned when an n-gram size is not positive.
	ErrInvalidNGramSize = errors.New("ngram size must be positive")

	// ErrInvalidThreshold is returned when a Jaro-Winkler boost threshold
	// is outside [0,1].
	ErrInvalidThreshold = errors.New("threshold must be in [0,1]")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)
