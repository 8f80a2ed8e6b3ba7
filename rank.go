package strdist

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Candidate is a scored entry returned by Rank.
type Candidate struct {
	Index int // position in the input slice
	Text  string
	Score float64
}

// Rank scores every candidate against query with m and returns the top k
// candidates by descending score. Ties keep input order. Scoring runs on up
// to GOMAXPROCS goroutines sharing the metric instance; Rank returns early
// with the context's error if ctx is cancelled.
//
// Returns ErrInvalidK if k < 1.
func Rank(ctx context.Context, m Metric, query string, candidates []string, k int) ([]Candidate, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	scored := make([]Candidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scored[i] = Candidate{Index: i, Text: c, Score: m.Similarity(&query, &c)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(scored, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return scored[:min(k, len(scored))], nil
}
