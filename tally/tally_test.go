package tally_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridres/scenario"
	"github.com/katalvlaran/gridres/tally"
	"github.com/stretchr/testify/require"
)

func sc(members ...[]int) []scenario.Scenario {
	out := make([]scenario.Scenario, len(members))
	for i, m := range members {
		out[i] = m
	}
	return out
}

func TestClassify(t *testing.T) {
	require.Equal(t, tally.ValidCascade, tally.Classify(0.1))
	require.Equal(t, tally.ValidCascade, tally.Classify(math.Inf(1)))
	require.Equal(t, tally.Failed, tally.Classify(-1))
	require.Equal(t, tally.NoCascade, tally.Classify(0))
	require.Equal(t, "failed", tally.Failed.String())
}

func TestAggregate_Triangle(t *testing.T) {
	ctx := context.Background()
	pop := sc([]int{0}, []int{1}, []int{2})

	tests := []struct {
		name     string
		outcomes []float64
		counters tally.Counters
		branches []tally.BranchTally
	}{
		{
			name:     "all zero",
			outcomes: []float64{0, 0, 0},
			counters: tally.Counters{ScenarioCount: 3, NoCascade: 3},
			branches: []tally.BranchTally{{}, {}, {}},
		},
		{
			name:     "branch 1 sheds",
			outcomes: []float64{0, 5, 0},
			counters: tally.Counters{ScenarioCount: 3, ValidCascade: 1, NoCascade: 2},
			branches: []tally.BranchTally{{}, {CascadeCount: 1, TotalShed: 5}, {}},
		},
		{
			name:     "one non-converged",
			outcomes: []float64{0, -1, 0},
			counters: tally.Counters{ScenarioCount: 3, Failed: 1, NoCascade: 2},
			branches: []tally.BranchTally{{}, {}, {}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := tally.Aggregate(ctx, pop, tc.outcomes, 3)
			require.NoError(t, err)
			require.Equal(t, tc.counters, s.Counters)
			require.Equal(t, tc.branches, s.Branches)
			require.True(t, s.Counters.Consistent())
		})
	}
}

// TestAggregate_MatchesDefinition compares the chunked reduction with a
// direct reading of the tally definitions on random inputs.
func TestAggregate_MatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const branches = 12

	for round := 0; round < 10; round++ {
		n := rng.Intn(500)
		pop := make([]scenario.Scenario, n)
		out := make([]float64, n)
		for i := range pop {
			seen := map[int]bool{}
			for k := 1 + rng.Intn(3); k > 0; k-- {
				seen[rng.Intn(branches)] = true
			}
			for b := 0; b < branches; b++ {
				if seen[b] {
					pop[i] = append(pop[i], b)
				}
			}
			switch rng.Intn(3) {
			case 0:
				out[i] = float64(rng.Intn(100)) / 4
			case 1:
				out[i] = -1
			}
		}

		want := make([]tally.BranchTally, branches)
		for b := 0; b < branches; b++ {
			for i, s := range pop {
				if out[i] > 0 && s.Contains(b) {
					want[b].CascadeCount++
					want[b].TotalShed += out[i]
				}
			}
		}

		for _, chunk := range []int{1, 7, 1000} {
			got, err := tally.Aggregate(context.Background(), pop, out, branches,
				tally.WithChunkSize(chunk), tally.WithWorkers(3))
			require.NoError(t, err)
			require.Equal(t, n, got.Counters.ScenarioCount)
			require.True(t, got.Counters.Consistent())
			for b := range want {
				require.Equal(t, want[b].CascadeCount, got.Branches[b].CascadeCount)
				require.InDelta(t, want[b].TotalShed, got.Branches[b].TotalShed, 1e-9)
			}
		}
	}
}

func TestAggregate_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := tally.Aggregate(ctx, sc([]int{0}), []float64{0, 1}, 3)
	require.ErrorIs(t, err, tally.ErrMisaligned)

	_, err = tally.Aggregate(ctx, sc([]int{0}, []int{3}), []float64{1, 1}, 3)
	require.ErrorIs(t, err, tally.ErrMalformedScenario)
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)

	_, err = tally.Aggregate(ctx, sc([]int{0}), []float64{math.NaN()}, 3)
	require.ErrorIs(t, err, tally.ErrInvalidOutcome)

	_, err = tally.Aggregate(ctx, nil, nil, -1)
	require.ErrorIs(t, err, tally.ErrInvalidParameter)

	s, err := tally.Aggregate(ctx, nil, nil, 0)
	require.NoError(t, err)
	require.Equal(t, tally.Counters{}, s.Counters)
	require.Empty(t, s.Branches)
}

func TestSummary_Merge(t *testing.T) {
	a := tally.NewSummary(2)
	a.Add([]int{0, 1}, 3)
	b := tally.NewSummary(2)
	b.Add([]int{1}, 2)
	b.Add([]int{0}, -1)

	require.NoError(t, a.Merge(b))
	require.NoError(t, a.Merge(nil))
	require.Equal(t, []tally.BranchTally{{CascadeCount: 1, TotalShed: 3}, {CascadeCount: 2, TotalShed: 5}}, a.Branches)
	require.Equal(t, tally.Counters{ScenarioCount: 3, ValidCascade: 2, Failed: 1}, a.Counters)

	require.ErrorIs(t, a.Merge(tally.NewSummary(3)), tally.ErrMisaligned)
}
