// Package bfs provides breadth-first search over an index-addressed Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and arc filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o, n)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newWalker(g Graph, o BFSOptions, n int) *walker {
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in Arcs order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Arcs(item.v) {
		if !w.opts.FilterArc(item.v, a) {
			continue
		}
		if w.res.Depth[a.To] < 0 {
			w.enqueue(a.To, nextDepth, item.v)
		}
	}
}

// Components labels the connected components of g reachable under opts
// (filters apply; hooks and MaxDepth are honored per search).
//
// Implementation:
//   - Stage 1: allocate one walker; its Depth slice doubles as the visited set.
//   - Stage 2: scan vertices in index order; each unreached vertex seeds a
//     search on the shared walker, and the Order suffix it appends is the
//     seed's component.
//
// Returns components in seed order, each listing vertex indices in
// discovery order (the seed first). An empty graph yields nil.
//
// Complexity: O(V + E) time and O(V) space for all components together.
func Components(g Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	w := newWalker(g, o, n)
	var comps [][]int
	for v := 0; v < n; v++ {
		if w.res.Depth[v] >= 0 {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, -1)
		if err := w.loop(); err != nil {
			return nil, err
		}
		to := len(w.res.Order)
		comps = append(comps, w.res.Order[from:to:to])
	}

	return comps, nil
}
