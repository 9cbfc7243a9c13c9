package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridres/metrics"
	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/scenario"
	"github.com/katalvlaran/gridres/tally"
)

// Input is everything Assemble joins.
type Input struct {
	// RunID identifies the run; uuid.Nil asks Assemble to mint one.
	RunID    uuid.UUID
	CaseName string

	Buses    []network.Bus
	Branches []network.Branch

	Metrics    *metrics.Result
	Summary    *tally.Summary
	Population *scenario.Population

	// Notes are appended after the metric notes.
	Notes []string
}

// Assemble merges in into a Report.
//
// Errors:
//   - ErrInconsistent when any vector is missing or misaligned, the
//     counters do not sum, or the tallies do not cover the population.
//
// Complexity: O(N + B + Σ|scenario|).
func Assemble(in Input) (*Report, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	r := &Report{
		RunID:     in.RunID,
		CaseName:  in.CaseName,
		Buses:     make([]BusRow, len(in.Buses)),
		Branches:  make([]BranchRow, len(in.Branches)),
		Scenarios: in.Population.Members(),
	}
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}
	if r.Scenarios == nil {
		r.Scenarios = [][]int{}
	}
	if in.Population.Mode != 0 {
		r.Mode = in.Population.Mode.String()
	}
	r.Seed = in.Population.Seed

	node := in.Metrics.Node
	for i, b := range in.Buses {
		r.Buses[i] = BusRow{
			ID:             b.ID,
			Degree:         Metric(node.Degree[i]),
			Eigenvector:    Metric(node.Eigenvector[i]),
			Betweenness:    Metric(node.Betweenness[i]),
			Closeness:      Metric(node.Closeness[i]),
			Clustering:     Metric(node.Clustering[i]),
			SelfAdmittance: Metric(node.SelfAdmittance[i]),
		}
	}
	edge := in.Metrics.Edge
	for k, br := range in.Branches {
		r.Branches[k] = BranchRow{
			Index:           k,
			From:            br.From,
			To:              br.To,
			DegreeProduct:   Metric(edge.DegreeProduct[k]),
			EdgeBetweenness: Metric(edge.EdgeBetweenness[k]),
			CascadeCount:    in.Summary.Branches[k].CascadeCount,
			TotalShed:       Metric(in.Summary.Branches[k].TotalShed),
		}
	}

	c := in.Summary.Counters
	r.Counters = Counters{
		ScenarioCount:       c.ScenarioCount,
		ValidCascadeSamples: c.ValidCascade,
		FailedSamples:       c.Failed,
		NoCascadeSamples:    c.NoCascade,
	}
	r.Notes = append(append(r.Notes, in.Metrics.Notes...), in.Notes...)

	return r, nil
}

func check(in Input) error {
	if in.Metrics == nil || in.Summary == nil || in.Population == nil {
		return fmt.Errorf("Assemble: missing component output: %w", ErrInconsistent)
	}
	nb := len(in.Buses)
	node := in.Metrics.Node
	for name, v := range map[string][]float64{
		"degree":          node.Degree,
		"eigenvector":     node.Eigenvector,
		"betweenness":     node.Betweenness,
		"closeness":       node.Closeness,
		"clustering":      node.Clustering,
		"self_admittance": node.SelfAdmittance,
	} {
		if len(v) != nb {
			return fmt.Errorf("Assemble: %s has %d values for %d buses: %w", name, len(v), nb, ErrInconsistent)
		}
	}

	nk := len(in.Branches)
	if len(in.Metrics.Edge.DegreeProduct) != nk || len(in.Metrics.Edge.EdgeBetweenness) != nk {
		return fmt.Errorf("Assemble: edge metrics not aligned with %d branches: %w", nk, ErrInconsistent)
	}
	if len(in.Summary.Branches) != nk {
		return fmt.Errorf("Assemble: %d tallies for %d branches: %w", len(in.Summary.Branches), nk, ErrInconsistent)
	}

	c := in.Summary.Counters
	if !c.Consistent() {
		return fmt.Errorf("Assemble: counters %+v do not sum: %w", c, ErrInconsistent)
	}
	if c.ScenarioCount != in.Population.Len() {
		return fmt.Errorf("Assemble: %d tallied scenarios for population of %d: %w",
			c.ScenarioCount, in.Population.Len(), ErrInconsistent)
	}

	return nil
}
