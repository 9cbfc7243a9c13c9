package centrality

import (
	"context"
	"fmt"
)

// Clustering returns the local clustering coefficient per vertex.
//
// Implementation:
//   - Stage 1: mark the neighbors of v.
//   - Stage 2: for every neighbor u count neighbors of u that are marked;
//     each triangle through v is seen twice.
//
// Complexity: O(Σ deg²).
func (l Library) Clustering(ctx context.Context, g Graph) ([]float64, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("Clustering: %w", err)
	}
	n := g.Order()
	out := make([]float64, n)
	mark := make([]int, n)
	for i := range mark {
		mark[i] = -1
	}

	for v := 0; v < n; v++ {
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		nb := g.Neighbors(v)
		d := len(nb)
		if d < 2 {
			continue
		}
		for _, u := range nb {
			mark[u] = v
		}
		links := 0
		for _, u := range nb {
			for _, w := range g.Neighbors(u) {
				if mark[w] == v {
					links++
				}
			}
		}
		out[v] = float64(links) / float64(d*(d-1))
	}

	return out, nil
}
