package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridres/bfs"
	"github.com/stretchr/testify/require"
)

// arcList is a minimal undirected bfs.Graph; edge k joins ends[k][0] and ends[k][1].
type arcList struct {
	arcs [][]bfs.Arc
}

func newArcList(n int, ends ...[2]int) *arcList {
	g := &arcList{arcs: make([][]bfs.Arc, n)}
	for k, e := range ends {
		g.arcs[e[0]] = append(g.arcs[e[0]], bfs.Arc{To: e[1], Edge: k})
		g.arcs[e[1]] = append(g.arcs[e[1]], bfs.Arc{To: e[0], Edge: k})
	}
	return g
}

func (g *arcList) Order() int           { return len(g.arcs) }
func (g *arcList) Arcs(v int) []bfs.Arc { return g.arcs[v] }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := newArcList(1)
	if _, err := bfs.BFS(g, 3); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a 4-cycle 0-1-2-3-0.
func TestCycleAndDepths(t *testing.T) {
	g := newArcList(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

// TestMaxDepthAndFilter checks depth limiting and removed edges.
func TestMaxDepthAndFilter(t *testing.T) {
	g := newArcList(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)
	require.False(t, res.Reached(2))

	res, err = bfs.BFS(g, 0, bfs.WithoutEdges(map[int]struct{}{1: {}}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)
	_, err = res.PathTo(3)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestHooks verifies hook order and OnVisit abort.
func TestHooks(t *testing.T) {
	g := newArcList(3, [2]int{0, 1}, [2]int{1, 2})
	var enq, deq []int
	stop := errors.New("stop")

	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
		bfs.WithOnVisit(func(v, _ int) error {
			if v == 1 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	if !reflect.DeepEqual(enq, []int{0, 1}) || !reflect.DeepEqual(deq, []int{0, 1}) {
		t.Errorf("hooks: enq=%v deq=%v", enq, deq)
	}
}

func TestCancellation(t *testing.T) {
	g := newArcList(2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := newArcList(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, comps)

	comps, err = bfs.Components(g, bfs.WithoutEdges(map[int]struct{}{0: {}}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1, 2}, {3, 4}}, comps)

	comps, err = bfs.Components(newArcList(0))
	require.NoError(t, err)
	require.Nil(t, comps)
}

// TestComponents_SingleSweep verifies every vertex is visited exactly once
// across all seeds and that returned components do not share storage.
func TestComponents_SingleSweep(t *testing.T) {
	const n = 1000
	g := newArcList(n, [2]int{0, 1})

	visits := make([]int, n)
	comps, err := bfs.Components(g, bfs.WithOnVisit(func(v, _ int) error {
		visits[v]++
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, comps, n-1)
	for v, c := range visits {
		require.Equal(t, 1, c, "vertex %d", v)
	}

	_ = append(comps[0], 99)
	require.Equal(t, []int{2}, comps[1])

	_, err = bfs.Components(g, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}
