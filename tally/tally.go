package tally

import (
	"fmt"
)

// Class is the bucket an outcome falls into.
type Class int

const (
	// NoCascade is a converged scenario with no load shed.
	NoCascade Class = iota
	// ValidCascade is a converged scenario that shed load.
	ValidCascade
	// Failed is a scenario whose solve did not converge.
	Failed
)

// String returns the bucket label.
func (c Class) String() string {
	switch c {
	case NoCascade:
		return "no_cascade"
	case ValidCascade:
		return "valid_cascade"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Classify buckets an outcome by sign. NaN must be rejected beforehand.
func Classify(v float64) Class {
	switch {
	case v > 0:
		return ValidCascade
	case v < 0:
		return Failed
	default:
		return NoCascade
	}
}

// BranchTally accumulates one branch's participation in valid cascades.
type BranchTally struct {
	CascadeCount int     `json:"cascade_count" yaml:"cascade_count"`
	TotalShed    float64 `json:"total_shed" yaml:"total_shed"`
}

// Counters are the run-level scenario counts. The three classes always sum
// to ScenarioCount.
type Counters struct {
	ScenarioCount int `json:"scenario_count" yaml:"scenario_count"`
	ValidCascade  int `json:"valid_cascade_samples" yaml:"valid_cascade_samples"`
	Failed        int `json:"failed_samples" yaml:"failed_samples"`
	NoCascade     int `json:"no_cascade_samples" yaml:"no_cascade_samples"`
}

// Summary is the reduction result: one BranchTally per branch plus Counters.
type Summary struct {
	Branches []BranchTally
	Counters Counters
}

// NewSummary returns an empty Summary for branchCount branches.
func NewSummary(branchCount int) *Summary {
	return &Summary{Branches: make([]BranchTally, branchCount)}
}

// Add folds one validated scenario/outcome pair into s.
func (s *Summary) Add(members []int, v float64) {
	s.Counters.ScenarioCount++
	switch Classify(v) {
	case ValidCascade:
		s.Counters.ValidCascade++
		for _, b := range members {
			s.Branches[b].CascadeCount++
			s.Branches[b].TotalShed += v
		}
	case Failed:
		s.Counters.Failed++
	default:
		s.Counters.NoCascade++
	}
}

// Merge adds other into s.
func (s *Summary) Merge(other *Summary) error {
	if other == nil {
		return nil
	}
	if len(other.Branches) != len(s.Branches) {
		return fmt.Errorf("Merge: %d branches into %d: %w", len(other.Branches), len(s.Branches), ErrMisaligned)
	}
	for i, bt := range other.Branches {
		s.Branches[i].CascadeCount += bt.CascadeCount
		s.Branches[i].TotalShed += bt.TotalShed
	}
	s.Counters.ScenarioCount += other.Counters.ScenarioCount
	s.Counters.ValidCascade += other.Counters.ValidCascade
	s.Counters.Failed += other.Counters.Failed
	s.Counters.NoCascade += other.Counters.NoCascade

	return nil
}

// Consistent reports whether the class counters sum to ScenarioCount.
func (c Counters) Consistent() bool {
	return c.ValidCascade+c.Failed+c.NoCascade == c.ScenarioCount
}
