package centrality

import (
	"context"
	"fmt"
)

// Degree returns deg(v)/(n-1) per vertex; 1 for every vertex when n <= 1.
func (l Library) Degree(_ context.Context, g Graph) ([]float64, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("Degree: %w", err)
	}
	n := g.Order()
	out := make([]float64, n)
	if n <= 1 {
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	s := 1 / float64(n-1)
	for v := 0; v < n; v++ {
		out[v] = float64(len(g.Neighbors(v))) * s
	}

	return out, nil
}
