package scenario

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultMaxScenarios caps the population a plan may materialize.
const DefaultMaxScenarios = 10_000_000

// Plan is the sizing decision for one run; it allocates nothing.
type Plan struct {
	BranchCount int
	FailMin     int
	SampleSize  int

	// Total is Σ_{k=1..FailMin} C(BranchCount, k), saturated at MaxUint64.
	Total uint64
	// Saturated reports that Total overflowed uint64.
	Saturated bool

	Mode Mode
	// Size is the exact population size Generate will produce.
	Size int
	// PerCardinality is the random-mode draw count per k (0 in exhaustive mode).
	PerCardinality int
}

// PlanOption configures NewPlan.
type PlanOption func(*planOptions)

type planOptions struct {
	maxScenarios int
}

// WithMaxScenarios overrides DefaultMaxScenarios; n <= 0 keeps the default.
func WithMaxScenarios(n int) PlanOption {
	return func(o *planOptions) {
		if n > 0 {
			o.maxScenarios = n
		}
	}
}

// NewPlan sizes a population.
//
// Implementation:
//   - Stage 1: reject negative inputs (ErrInvalidParameter).
//   - Stage 2: compute Total with exact big-integer binomials, stopping as
//     soon as it passes MaxUint64.
//   - Stage 3: choose Exhaustive iff SampleSize >= Total; size accordingly.
//   - Stage 4: refuse sizes above the limit (ErrPopulationTooLarge).
//
// Complexity: O(min(FailMin, BranchCount)) big-integer steps.
func NewPlan(branchCount, failMin, sampleSize int, opts ...PlanOption) (Plan, error) {
	o := planOptions{maxScenarios: DefaultMaxScenarios}
	for _, opt := range opts {
		opt(&o)
	}
	if branchCount < 0 || failMin < 0 || sampleSize < 0 {
		return Plan{}, fmt.Errorf("NewPlan(branches=%d, failMin=%d, sampleSize=%d): %w",
			branchCount, failMin, sampleSize, ErrInvalidParameter)
	}

	p := Plan{BranchCount: branchCount, FailMin: failMin, SampleSize: sampleSize}
	p.Total, p.Saturated = totalCombinations(branchCount, failMin)

	if !p.Saturated && uint64(sampleSize) >= p.Total {
		p.Mode = Exhaustive
		if p.Total > uint64(o.maxScenarios) {
			return Plan{}, fmt.Errorf("NewPlan: exhaustive total %d exceeds %d: %w",
				p.Total, o.maxScenarios, ErrPopulationTooLarge)
		}
		p.Size = int(p.Total)

		return p, nil
	}

	p.Mode = Random
	p.PerCardinality = sampleSize / failMin // failMin > 0: Total > sampleSize >= 0
	p.Size = failMin * p.PerCardinality
	if p.Size > o.maxScenarios {
		return Plan{}, fmt.Errorf("NewPlan: random size %d exceeds %d: %w",
			p.Size, o.maxScenarios, ErrPopulationTooLarge)
	}

	return p, nil
}

// totalCombinations returns Σ_{k=1..m} C(n,k), saturating at MaxUint64.
func totalCombinations(n, m int) (uint64, bool) {
	if m > n {
		m = n
	}
	limit := new(big.Int).SetUint64(math.MaxUint64)
	sum := new(big.Int)
	c := big.NewInt(1) // C(n,0)
	for k := 1; k <= m; k++ {
		// C(n,k) = C(n,k-1)·(n-k+1)/k, exact at every step.
		c.Mul(c, big.NewInt(int64(n-k+1)))
		c.Quo(c, big.NewInt(int64(k)))
		sum.Add(sum, c)
		if sum.Cmp(limit) > 0 {
			return math.MaxUint64, true
		}
	}

	return sum.Uint64(), false
}
