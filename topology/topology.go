package topology

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridres/bfs"
	"github.com/katalvlaran/gridres/matrix"
	"github.com/katalvlaran/gridres/network"
)

// Option configures Build.
type Option func(*options)

type options struct {
	minReactance float64
}

// WithMinReactance treats |x| < eps as zero reactance. The default is 0,
// so only exact zeros are rejected. Negative or non-finite eps is ignored.
func WithMinReactance(eps float64) Option {
	return func(o *options) {
		if eps >= 0 && !math.IsInf(eps, 0) {
			o.minReactance = eps
		}
	}
}

// Topology is the adjacency structure of a network, indexed by bus order.
type Topology struct {
	ids   []int
	index map[int]int

	adj       *matrix.Dense
	neighbors [][]int
	arcs      [][]bfs.Arc
	selfAdm   []float64
	branches  int
}

var _ bfs.Graph = (*Topology)(nil)

// Build derives the Topology of net.
//
// Implementation:
//   - Stage 1: index buses in order; allocate an N×N zero matrix.
//   - Stage 2: one pass over branches: check reactance, mark both directions,
//     record incidence, add 1/x to both endpoints.
//   - Stage 3: sort and dedupe neighbor lists.
//
// Errors:
//   - ErrNilNetwork.
//   - network.ErrZeroReactance / network.ErrInvalidReactance, wrapped with the
//     branch index; no partial Topology is returned.
//   - network.ErrUnknownBus, network.ErrSelfLoop for branches that bypassed
//     network validation.
//
// Complexity: O(N² + B log B) time (matrix allocation dominates), O(N² + B) space.
func Build(net *network.Network, opts ...Option) (*Topology, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	buses := net.Buses()
	branches := net.Branches()
	n := len(buses)

	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	t := &Topology{
		ids:       make([]int, n),
		index:     make(map[int]int, n),
		adj:       adj,
		neighbors: make([][]int, n),
		arcs:      make([][]bfs.Arc, n),
		selfAdm:   make([]float64, n),
		branches:  len(branches),
	}
	for i, b := range buses {
		t.ids[i] = b.ID
		t.index[b.ID] = i
	}

	for k, br := range branches {
		if err = network.CheckReactance(br.Reactance); err != nil {
			return nil, fmt.Errorf("Build: branch %d (%d-%d): %w", k, br.From, br.To, err)
		}
		if math.Abs(br.Reactance) < o.minReactance {
			return nil, fmt.Errorf("Build: branch %d (%d-%d): |x|=%g: %w",
				k, br.From, br.To, br.Reactance, network.ErrZeroReactance)
		}
		i, ok := t.index[br.From]
		if !ok {
			return nil, fmt.Errorf("Build: branch %d: from %d: %w", k, br.From, network.ErrUnknownBus)
		}
		j, ok := t.index[br.To]
		if !ok {
			return nil, fmt.Errorf("Build: branch %d: to %d: %w", k, br.To, network.ErrUnknownBus)
		}
		if i == j {
			return nil, fmt.Errorf("Build: branch %d: %w", k, network.ErrSelfLoop)
		}

		_ = t.adj.Set(i, j, 1) // in range by construction
		_ = t.adj.Set(j, i, 1)
		t.neighbors[i] = append(t.neighbors[i], j)
		t.neighbors[j] = append(t.neighbors[j], i)
		t.arcs[i] = append(t.arcs[i], bfs.Arc{To: j, Edge: k})
		t.arcs[j] = append(t.arcs[j], bfs.Arc{To: i, Edge: k})

		y := 1 / br.Reactance
		t.selfAdm[i] += y
		t.selfAdm[j] += y
	}

	for i := range t.neighbors {
		t.neighbors[i] = sortedUnique(t.neighbors[i])
	}

	return t, nil
}

func sortedUnique(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	sort.Ints(xs)
	w := 1
	for r := 1; r < len(xs); r++ {
		if xs[r] != xs[w-1] {
			xs[w] = xs[r]
			w++
		}
	}

	return xs[:w]
}

// Order returns the number of buses.
func (t *Topology) Order() int { return len(t.ids) }

// BranchCount returns the number of branches the Topology was built from.
func (t *Topology) BranchCount() int { return t.branches }

// BusID returns the id of the bus at index i.
func (t *Topology) BusID(i int) (int, error) {
	if i < 0 || i >= len(t.ids) {
		return 0, fmt.Errorf("BusID(%d): %w", i, ErrBusOutOfRange)
	}

	return t.ids[i], nil
}

// BusIndex returns the index of bus id.
func (t *Topology) BusIndex(id int) (int, bool) {
	i, ok := t.index[id]

	return i, ok
}

// Adjacent reports whether buses i and j share at least one branch.
func (t *Topology) Adjacent(i, j int) bool {
	v, err := t.adj.At(i, j)

	return err == nil && v != 0
}

// Neighbors returns the sorted, duplicate-free neighbor indices of bus i.
// The returned slice must not be modified. Out-of-range i yields nil.
func (t *Topology) Neighbors(i int) []int {
	if i < 0 || i >= len(t.neighbors) {
		return nil
	}

	return t.neighbors[i]
}

// Arcs returns the incidence list of bus i in branch order: one entry per
// incident branch, parallel branches included. Implements bfs.Graph.
func (t *Topology) Arcs(i int) []bfs.Arc {
	if i < 0 || i >= len(t.arcs) {
		return nil
	}

	return t.arcs[i]
}

// Degree returns the number of distinct neighbors of bus i.
func (t *Topology) Degree(i int) int { return len(t.Neighbors(i)) }

// Adjacency returns a copy of the 0/1 adjacency matrix.
func (t *Topology) Adjacency() matrix.Matrix { return t.adj.Clone() }

// SelfAdmittance returns a copy of the per-bus self-admittance vector.
func (t *Topology) SelfAdmittance() []float64 {
	out := make([]float64, len(t.selfAdm))
	copy(out, t.selfAdm)

	return out
}

// Components returns the connected components (bus indices), optionally
// with some branches out of service.
// Complexity: O(N + B).
func (t *Topology) Components(outaged ...int) ([][]int, error) {
	if len(outaged) == 0 {
		return bfs.Components(t)
	}
	removed := make(map[int]struct{}, len(outaged))
	for _, k := range outaged {
		removed[k] = struct{}{}
	}

	return bfs.Components(t, bfs.WithoutEdges(removed))
}

// Connected reports whether every bus is reachable from every other.
// A Topology with zero or one bus is connected.
func (t *Topology) Connected() bool {
	comps, err := t.Components()

	return err == nil && len(comps) <= 1
}

// Validate asserts the structural invariants of the adjacency matrix:
// symmetric, zero diagonal, and row sums equal to neighbor counts.
func (t *Topology) Validate() error {
	if err := matrix.ValidateSymmetric(t.adj, 0); err != nil {
		return fmt.Errorf("topology: %w", err)
	}
	if err := matrix.ValidateZeroDiagonal(t.adj, 0); err != nil {
		return fmt.Errorf("topology: %w", err)
	}
	sums, err := matrix.RowSums(t.adj)
	if err != nil {
		return fmt.Errorf("topology: %w", err)
	}
	for i, s := range sums {
		if int(s) != len(t.neighbors[i]) {
			return fmt.Errorf("topology: row %d sums to %g, want %d: %w",
				i, s, len(t.neighbors[i]), matrix.ErrDimensionMismatch)
		}
	}

	return nil
}
