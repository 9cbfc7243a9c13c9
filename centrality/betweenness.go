package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridres/matrix"
)

// Betweenness returns normalized shortest-path betweenness per vertex using
// Brandes' algorithm. Scores are scaled by 1/((n-1)(n-2)) when n > 2 and
// left at 0 otherwise.
//
// Complexity: O(V·E) time, O(V + E) space.
func (l Library) Betweenness(ctx context.Context, g Graph) ([]float64, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("Betweenness: %w", err)
	}
	n := g.Order()
	cb := make([]float64, n)
	if n < 3 {
		return cb, nil
	}
	b := newBrandes(n)
	for s := 0; s < n; s++ {
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		b.search(g, s)
		b.accumulate(s, cb, nil)
	}

	norm := 1 / float64((n-1)*(n-2))
	for i := range cb {
		cb[i] *= norm
	}

	return cb, nil
}

// EdgeBetweenness returns normalized edge betweenness as a symmetric n×n
// matrix: entry (u,v) is the share of shortest paths that cross the edge
// u–v, scaled by 1/(n(n-1)). Non-adjacent pairs hold 0.
//
// Complexity: O(V·E) time, O(V²) space for the result.
func (l Library) EdgeBetweenness(ctx context.Context, g Graph) (matrix.Matrix, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("EdgeBetweenness: %w", err)
	}
	n := g.Order()
	eb, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("EdgeBetweenness: %w", err)
	}
	if n < 2 {
		return eb, nil
	}

	// Accumulate on the upper triangle, then mirror.
	acc := make(map[[2]int]float64)
	b := newBrandes(n)
	for s := 0; s < n; s++ {
		if err = ctxErr(ctx); err != nil {
			return nil, err
		}
		b.search(g, s)
		b.accumulate(s, nil, acc)
	}

	norm := 1 / float64(n*(n-1))
	for k, v := range acc {
		if err = eb.Set(k[0], k[1], v*norm); err != nil {
			return nil, fmt.Errorf("EdgeBetweenness: %w", err)
		}
		if err = eb.Set(k[1], k[0], v*norm); err != nil {
			return nil, fmt.Errorf("EdgeBetweenness: %w", err)
		}
	}

	return eb, nil
}

// brandes holds the per-source scratch state, reused across sources.
type brandes struct {
	stack []int
	queue []int
	pred  [][]int
	sigma []float64
	dist  []int
	delta []float64
}

func newBrandes(n int) *brandes {
	return &brandes{
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
		pred:  make([][]int, n),
		sigma: make([]float64, n),
		dist:  make([]int, n),
		delta: make([]float64, n),
	}
}

// search is the BFS phase: visit stack, shortest-path counts and predecessors.
func (b *brandes) search(g Graph, s int) {
	for i := range b.dist {
		b.dist[i] = -1
		b.sigma[i] = 0
		b.delta[i] = 0
		b.pred[i] = b.pred[i][:0]
	}
	b.stack = b.stack[:0]
	b.sigma[s] = 1
	b.dist[s] = 0
	b.queue = append(b.queue[:0], s)

	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		b.stack = append(b.stack, v)
		for _, w := range g.Neighbors(v) {
			if b.dist[w] < 0 {
				b.dist[w] = b.dist[v] + 1
				b.queue = append(b.queue, w)
			}
			if b.dist[w] == b.dist[v]+1 {
				b.sigma[w] += b.sigma[v]
				b.pred[w] = append(b.pred[w], v)
			}
		}
	}
}

// accumulate back-propagates pair dependencies in reverse BFS order into
// node scores (cb) and/or edge scores keyed by (min,max) endpoints.
func (b *brandes) accumulate(s int, cb []float64, edges map[[2]int]float64) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		for _, v := range b.pred[w] {
			c := (b.sigma[v] / b.sigma[w]) * (1 + b.delta[w])
			if edges != nil {
				edges[edgeKey(v, w)] += c
			}
			b.delta[v] += c
		}
		if cb != nil && w != s {
			cb[w] += b.delta[w]
		}
	}
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
