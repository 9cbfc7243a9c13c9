package centrality

import (
	"context"
	"fmt"
)

// Graph is the read-only view every routine walks. Neighbors(v) must be
// duplicate-free and must not contain v.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

const (
	// DefaultMaxIter bounds power iteration.
	DefaultMaxIter = 100
	// DefaultTol is the per-vertex convergence tolerance of power iteration.
	DefaultTol = 1e-6
)

// Library bundles the routines behind one value so callers can inject it.
// The zero value uses DefaultMaxIter and DefaultTol.
type Library struct {
	MaxIter int
	Tol     float64
}

func (l Library) maxIter() int {
	if l.MaxIter > 0 {
		return l.MaxIter
	}

	return DefaultMaxIter
}

func (l Library) tol() float64 {
	if l.Tol > 0 {
		return l.Tol
	}

	return DefaultTol
}

// checkGraph validates the neighbor lists once so the algorithms can index
// without bounds checks.
func checkGraph(g Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Order()
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(v) {
			if w < 0 || w >= n || w == v {
				return fmt.Errorf("vertex %d -> %d: %w", v, w, ErrBadNeighbor)
			}
		}
	}

	return nil
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
