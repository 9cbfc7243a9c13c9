package tally

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridres/scenario"
)

// Option configures Aggregate.
type Option func(*aggOptions)

type aggOptions struct {
	workers   int
	chunkSize int
}

// DefaultChunkSize is the number of scenarios one worker reduces at a time.
const DefaultChunkSize = 1024

// WithWorkers bounds concurrent chunk reduction; n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *aggOptions) { o.workers = n }
}

// WithChunkSize sets the chunk length; n <= 0 keeps DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *aggOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// Aggregate reduces aligned scenarios and outcomes into a Summary.
//
// Implementation:
//   - Stage 1: validate lengths (ErrMisaligned), outcomes (ErrInvalidOutcome)
//     and every scenario against branchCount (ErrMalformedScenario). Nothing
//     is tallied if any check fails.
//   - Stage 2 (map): each chunk is reduced into its own Summary on an
//     errgroup; workers share no mutable state.
//   - Stage 3 (reduce): fragments are merged sequentially in chunk order.
//
// Complexity: O(Σ|scenario| + W·B) time, O(W·B) space for W chunks.
func Aggregate(ctx context.Context, scenarios []scenario.Scenario, outcomes []float64, branchCount int, opts ...Option) (*Summary, error) {
	o := aggOptions{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	if branchCount < 0 {
		return nil, fmt.Errorf("Aggregate: branchCount %d: %w", branchCount, ErrInvalidParameter)
	}
	if err := validate(scenarios, outcomes, branchCount); err != nil {
		return nil, err
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := (len(scenarios) + o.chunkSize - 1) / o.chunkSize
	parts := make([]*Summary, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := c * o.chunkSize
			hi := min(lo+o.chunkSize, len(scenarios))
			part := NewSummary(branchCount)
			for i := lo; i < hi; i++ {
				part.Add(scenarios[i], outcomes[i])
			}
			parts[c] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := NewSummary(branchCount)
	for _, p := range parts {
		if err := total.Merge(p); err != nil {
			return nil, err
		}
	}

	return total, nil
}

func validate(scenarios []scenario.Scenario, outcomes []float64, branchCount int) error {
	if len(scenarios) != len(outcomes) {
		return fmt.Errorf("Aggregate: %d outcomes for %d scenarios: %w", len(outcomes), len(scenarios), ErrMisaligned)
	}
	for i, v := range outcomes {
		if math.IsNaN(v) {
			return fmt.Errorf("Aggregate: outcome %d: %w", i, ErrInvalidOutcome)
		}
	}
	for i, s := range scenarios {
		if err := s.Validate(branchCount); err != nil {
			return fmt.Errorf("Aggregate: scenario %d: %w: %w", i, ErrMalformedScenario, err)
		}
	}

	return nil
}
