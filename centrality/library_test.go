package centrality_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/gridres/centrality"
	"github.com/stretchr/testify/require"
)

// adj is a simple undirected centrality.Graph built from edge pairs.
type adj [][]int

func undirected(n int, edges ...[2]int) adj {
	g := make(adj, n)
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], e[1])
		g[e[1]] = append(g[e[1]], e[0])
	}
	return g
}

func (g adj) Order() int            { return len(g) }
func (g adj) Neighbors(v int) []int { return g[v] }

const eps = 1e-9

var (
	ctx  = context.Background()
	lib  = centrality.Library{}
	path = undirected(3, [2]int{0, 1}, [2]int{1, 2})
	star = undirected(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	tri  = undirected(3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
)

func TestDegree(t *testing.T) {
	got, err := lib.Degree(ctx, path)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 1, 0.5}, got, eps)

	got, err = lib.Degree(ctx, undirected(1))
	require.NoError(t, err)
	require.Equal(t, []float64{1}, got)

	got, err = lib.Degree(ctx, undirected(0))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBetweenness(t *testing.T) {
	got, err := lib.Betweenness(ctx, path)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 0}, got, eps)

	got, err = lib.Betweenness(ctx, star)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0, 0, 0}, got, eps)

	got, err = lib.Betweenness(ctx, tri)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0, 0}, got, eps)
}

func TestEdgeBetweenness(t *testing.T) {
	eb, err := lib.EdgeBetweenness(ctx, path)
	require.NoError(t, err)
	for _, c := range []struct {
		i, j int
		want float64
	}{{0, 1, 2.0 / 3}, {1, 0, 2.0 / 3}, {1, 2, 2.0 / 3}, {0, 2, 0}, {1, 1, 0}} {
		v, err := eb.At(c.i, c.j)
		require.NoError(t, err)
		require.InDelta(t, c.want, v, eps, "(%d,%d)", c.i, c.j)
	}

	eb, err = lib.EdgeBetweenness(ctx, tri)
	require.NoError(t, err)
	v, _ := eb.At(2, 0)
	require.InDelta(t, 1.0/3, v, eps)
}

func TestCloseness(t *testing.T) {
	got, err := lib.Closeness(ctx, path)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0 / 3, 1, 2.0 / 3}, got, eps)

	// Disconnected: 0-1 plus isolated 2.
	got, err = lib.Closeness(ctx, undirected(3, [2]int{0, 1}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0}, got, eps)
}

func TestClustering(t *testing.T) {
	got, err := lib.Clustering(ctx, tri)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, got, eps)

	// Triangle 0-1-2 with pendant 3 on 0.
	g := undirected(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{0, 3})
	got, err = lib.Clustering(ctx, g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.0 / 3, 1, 1, 0}, got, eps)
}

func TestEigenvector(t *testing.T) {
	got, err := lib.Eigenvector(ctx, path)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, math.Sqrt2 / 2, 0.5}, got, 1e-4)

	norm := 0.0
	for _, x := range got {
		norm += x * x
	}
	require.InDelta(t, 1, norm, 1e-9)

	got, err = lib.Eigenvector(ctx, undirected(2))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}, got, eps)

	_, err = centrality.Library{MaxIter: 1}.Eigenvector(ctx, path)
	require.ErrorIs(t, err, centrality.ErrNotConverged)
}

func TestGraphErrors(t *testing.T) {
	_, err := lib.Degree(ctx, nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)

	bad := adj{{0}}
	_, err = lib.Betweenness(ctx, bad)
	require.ErrorIs(t, err, centrality.ErrBadNeighbor)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = lib.Closeness(cancelled, path)
	require.ErrorIs(t, err, context.Canceled)
}
