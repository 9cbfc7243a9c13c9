package cascade

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/scenario"
)

// NonConverged is the canonical outcome for a scenario the solver could not
// bring to convergence.
const NonConverged = -1.0

// Settings is passed through to the simulator unchanged.
type Settings struct {
	// Verbose asks the simulator to report per-scenario detail.
	Verbose bool
	// Params carries simulator-specific tuning.
	Params map[string]string
}

// Simulator evaluates every scenario against net and returns one outcome per
// scenario, index-aligned with scenarios.
type Simulator interface {
	Simulate(ctx context.Context, net *network.Network, scenarios []scenario.Scenario, s Settings) ([]float64, error)
}

// SimulatorFunc adapts a function to Simulator.
type SimulatorFunc func(ctx context.Context, net *network.Network, scenarios []scenario.Scenario, s Settings) ([]float64, error)

// Simulate calls f.
func (f SimulatorFunc) Simulate(ctx context.Context, net *network.Network, scenarios []scenario.Scenario, s Settings) ([]float64, error) {
	return f(ctx, net, scenarios, s)
}

// Run invokes sim once with the whole population and validates the result.
//
// Errors:
//   - ErrNilSimulator.
//   - ErrSimulator wrapping the simulator's own error.
//   - ErrMisaligned when len(outcomes) != pop.Len().
//   - ErrInvalidOutcome for a NaN outcome (±Inf is passed through).
//
// Complexity: O(P) on top of the simulator.
func Run(ctx context.Context, sim Simulator, net *network.Network, pop *scenario.Population, s Settings) ([]float64, error) {
	if sim == nil {
		return nil, ErrNilSimulator
	}
	var scenarios []scenario.Scenario
	if pop != nil {
		scenarios = pop.Scenarios
	}

	out, err := sim.Simulate(ctx, net, scenarios, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSimulator, err)
	}
	if len(out) != len(scenarios) {
		return nil, fmt.Errorf("Run: %d outcomes for %d scenarios: %w", len(out), len(scenarios), ErrMisaligned)
	}
	for i, v := range out {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("Run: scenario %d: %w", i, ErrInvalidOutcome)
		}
	}

	return out, nil
}
