package metrics

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridres/centrality"
	"github.com/katalvlaran/gridres/matrix"
	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/topology"
)

// Library is the graph-algorithm collaborator.
type Library interface {
	Degree(ctx context.Context, g centrality.Graph) ([]float64, error)
	Eigenvector(ctx context.Context, g centrality.Graph) ([]float64, error)
	Betweenness(ctx context.Context, g centrality.Graph) ([]float64, error)
	Closeness(ctx context.Context, g centrality.Graph) ([]float64, error)
	Clustering(ctx context.Context, g centrality.Graph) ([]float64, error)
	EdgeBetweenness(ctx context.Context, g centrality.Graph) (matrix.Matrix, error)
}

var _ Library = centrality.Library{}

// NodeMetrics holds one value per bus, in bus order.
type NodeMetrics struct {
	Degree         []float64
	Eigenvector    []float64
	Betweenness    []float64
	Closeness      []float64
	Clustering     []float64
	SelfAdmittance []float64
}

// EdgeMetrics holds one value per branch, in branch order.
type EdgeMetrics struct {
	DegreeProduct   []float64
	EdgeBetweenness []float64
}

// Result is the Engine output.
type Result struct {
	Node  NodeMetrics
	Edge  EdgeMetrics
	Notes []string
}

// Engine computes metrics through an injected Library.
type Engine struct {
	lib Library
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLibrary replaces the default centrality.Library.
func WithLibrary(lib Library) EngineOption {
	return func(e *Engine) {
		if lib != nil {
			e.lib = lib
		}
	}
}

// NewEngine returns an Engine backed by centrality.Library{} unless overridden.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{lib: centrality.Library{}}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Compute derives node and edge metrics.
//
// Implementation:
//   - Stage 1: node vectors from the Library, each checked against Order().
//     A non-converged eigenvector becomes a NaN vector plus a note.
//   - Stage 2: self-admittance copied from the topology.
//   - Stage 3: one pass over branches fusing degree and EBC into edge metrics.
//
// Errors:
//   - ErrNilInput, ErrMisaligned, any non-convergence-unrelated Library error, ctx.Err().
//
// Complexity: dominated by the Library (O(V·E) for betweenness).
func (e *Engine) Compute(ctx context.Context, topo *topology.Topology, branches []network.Branch) (*Result, error) {
	if topo == nil {
		return nil, ErrNilInput
	}
	n := topo.Order()
	res := &Result{}

	var err error
	steps := []struct {
		name string
		fn   func(context.Context, centrality.Graph) ([]float64, error)
		dst  *[]float64
	}{
		{"degree", e.lib.Degree, &res.Node.Degree},
		{"eigenvector", e.lib.Eigenvector, &res.Node.Eigenvector},
		{"betweenness", e.lib.Betweenness, &res.Node.Betweenness},
		{"closeness", e.lib.Closeness, &res.Node.Closeness},
		{"clustering", e.lib.Clustering, &res.Node.Clustering},
	}
	for _, st := range steps {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		v, err := st.fn(ctx, topo)
		if errors.Is(err, centrality.ErrNotConverged) {
			v = nanVector(n)
			res.Notes = append(res.Notes, fmt.Sprintf("%s centrality did not converge; reported as NaN", st.name))
		} else if err != nil {
			return nil, fmt.Errorf("Compute: %s: %w", st.name, err)
		}
		if len(v) != n {
			return nil, fmt.Errorf("Compute: %s has %d values for %d buses: %w", st.name, len(v), n, ErrMisaligned)
		}
		*st.dst = v
	}
	res.Node.SelfAdmittance = topo.SelfAdmittance()

	ebc, err := e.lib.EdgeBetweenness(ctx, topo)
	if err != nil {
		return nil, fmt.Errorf("Compute: edge betweenness: %w", err)
	}
	if ebc == nil || ebc.Rows() != n || ebc.Cols() != n {
		return nil, fmt.Errorf("Compute: edge betweenness shape: %w", ErrMisaligned)
	}

	res.Edge.DegreeProduct = make([]float64, len(branches))
	res.Edge.EdgeBetweenness = make([]float64, len(branches))
	for k, br := range branches {
		i, ok := topo.BusIndex(br.From)
		if !ok {
			return nil, fmt.Errorf("Compute: branch %d from %d: %w", k, br.From, ErrMisaligned)
		}
		j, ok := topo.BusIndex(br.To)
		if !ok {
			return nil, fmt.Errorf("Compute: branch %d to %d: %w", k, br.To, ErrMisaligned)
		}
		res.Edge.DegreeProduct[k] = res.Node.Degree[i] * res.Node.Degree[j]
		if res.Edge.EdgeBetweenness[k], err = ebc.At(i, j); err != nil {
			return nil, fmt.Errorf("Compute: branch %d: %w", k, err)
		}
	}

	res.Notes = append(res.Notes, describe(topo)...)

	return res, nil
}

func nanVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}

	return v
}

// describe documents the sentinels a topology's shape implies.
func describe(topo *topology.Topology) []string {
	var notes []string
	switch n := topo.Order(); {
	case n == 0:
		notes = append(notes, "network has no buses; all metric vectors are empty")
	case topo.BranchCount() == 0:
		notes = append(notes, "network has no branches; betweenness, closeness and clustering are zero")
	}
	comps, err := topo.Components()
	if err == nil && len(comps) > 1 {
		notes = append(notes, fmt.Sprintf(
			"network has %d islands; closeness uses reachable buses only and unreachable pairs add no betweenness",
			len(comps)))
	}

	return notes
}
