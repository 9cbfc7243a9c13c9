package centrality

import (
	"context"
	"fmt"
)

// Closeness returns (r-1)/Σd · (r-1)/(n-1) per vertex, where r counts the
// vertices reachable from v (v included) and Σd sums their hop distances.
// A vertex reaching nothing, or a graph with n <= 1, scores 0.
//
// Complexity: O(V·(V+E)).
func (l Library) Closeness(ctx context.Context, g Graph) ([]float64, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("Closeness: %w", err)
	}
	n := g.Order()
	out := make([]float64, n)
	if n <= 1 {
		return out, nil
	}
	dist := make([]int, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		queue = append(queue[:0], s)
		total, reached := 0, 1
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, w := range g.Neighbors(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					total += dist[w]
					reached++
					queue = append(queue, w)
				}
			}
		}
		if total > 0 {
			r := float64(reached - 1)
			out[s] = (r / float64(total)) * (r / float64(n-1))
		}
	}

	return out, nil
}
