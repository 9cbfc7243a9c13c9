package centrality

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigenvector returns the principal eigenvector of the adjacency matrix,
// normalized to unit L2 norm.
//
// Implementation:
//   - Stage 1: build M = A + I as a gonum SymDense; the shift keeps the
//     iteration from oscillating on bipartite graphs.
//   - Stage 2: start from the uniform vector 1/n and repeat x ← Mx/‖Mx‖₂.
//   - Stage 3: stop once Σ|x_k - x_{k-1}| < n·Tol.
//
// Errors:
//   - ErrNotConverged after MaxIter products; no vector is returned.
//
// Complexity: O(MaxIter·n²) time, O(n²) space.
func (l Library) Eigenvector(ctx context.Context, g Graph) ([]float64, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("Eigenvector: %w", err)
	}
	n := g.Order()
	if n == 0 {
		return []float64{}, nil
	}

	m := mat.NewSymDense(n, nil)
	for v := 0; v < n; v++ {
		m.SetSym(v, v, 1)
		for _, w := range g.Neighbors(v) {
			m.SetSym(v, w, 1)
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/float64(n))
	}
	next := mat.NewVecDense(n, nil)
	limit := float64(n) * l.tol()

	for iter := 0; iter < l.maxIter(); iter++ {
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		next.MulVec(m, x)
		norm := mat.Norm(next, 2)
		if norm == 0 {
			norm = 1
		}
		next.ScaleVec(1/norm, next)

		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next.AtVec(i) - x.AtVec(i))
		}
		x, next = next, x
		if diff < limit {
			out := make([]float64, n)
			for i := range out {
				out[i] = x.AtVec(i)
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("Eigenvector: %d iterations: %w", l.maxIter(), ErrNotConverged)
}
