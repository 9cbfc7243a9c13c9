package scenario_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/gridres/scenario"
	"github.com/stretchr/testify/require"
)

func binom(n, k int) int {
	if k > n {
		return 0
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - i + 1) / i
	}
	return c
}

// TestGenerate_ExhaustiveSizeAndUniqueness checks the exact total and the
// absence of duplicates over a grid of shapes.
func TestGenerate_ExhaustiveSizeAndUniqueness(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for m := 0; m <= 4; m++ {
			want := 0
			for k := 1; k <= m; k++ {
				want += binom(n, k)
			}
			p, err := scenario.NewPlan(n, m, want)
			require.NoError(t, err)
			require.Equal(t, scenario.Exhaustive, p.Mode)

			pop, err := scenario.Generate(context.Background(), p, scenario.WithWorkers(2))
			require.NoError(t, err)
			require.Equal(t, want, pop.Len(), "n=%d m=%d", n, m)

			seen := make(map[string]bool, pop.Len())
			for _, s := range pop.Scenarios {
				require.NoError(t, s.Validate(n))
				require.LessOrEqual(t, len(s), m)
				require.False(t, seen[s.Key()], "duplicate %v", s)
				seen[s.Key()] = true
			}
		}
	}
}

func TestGenerate_ExhaustiveOrder(t *testing.T) {
	p, err := scenario.NewPlan(4, 2, 100)
	require.NoError(t, err)
	pop, err := scenario.Generate(context.Background(), p)
	require.NoError(t, err)

	require.Equal(t, [][]int{
		{0}, {1}, {2}, {3},
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}, pop.Members())
	require.Zero(t, pop.Seed)
}

func TestGenerate_RandomSizeAndCardinality(t *testing.T) {
	p, err := scenario.NewPlan(20, 3, 100)
	require.NoError(t, err)
	require.Equal(t, scenario.Random, p.Mode)

	pop, err := scenario.Generate(context.Background(), p, scenario.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, 3*(100/3), pop.Len())
	require.Equal(t, int64(42), pop.Seed)

	for i, s := range pop.Scenarios {
		require.NoError(t, s.Validate(20))
		k := i/33 + 1 // buckets are concatenated in k order
		require.GreaterOrEqual(t, len(s), 1)
		require.LessOrEqual(t, len(s), k)
	}
}

func TestGenerate_RandomReproducible(t *testing.T) {
	p, err := scenario.NewPlan(50, 4, 200)
	require.NoError(t, err)

	a, err := scenario.Generate(context.Background(), p, scenario.WithSeed(7), scenario.WithWorkers(4))
	require.NoError(t, err)
	b, err := scenario.Generate(context.Background(), p, scenario.WithSeed(7), scenario.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, a.Members(), b.Members())

	c, err := scenario.Generate(context.Background(), p, scenario.WithSeed(8))
	require.NoError(t, err)
	require.NotEqual(t, a.Members(), c.Members())

	d, err := scenario.Generate(context.Background(), p)
	require.NoError(t, err)
	require.NotZero(t, d.Seed, "clock seed is recorded")
}

func TestGenerate_ReporterSerialized(t *testing.T) {
	p, err := scenario.NewPlan(6, 3, 1000)
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		calls  int
		last   int
		totals = map[int]bool{}
	)
	rep := scenario.ReporterFunc(func(done, total int, phase string) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		require.Greater(t, done, last)
		last = done
		totals[total] = true
		require.Contains(t, phase, "exhaustive k=")
	})
	pop, err := scenario.Generate(context.Background(), p, scenario.WithReporter(rep))
	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Equal(t, pop.Len(), last)
	require.Equal(t, map[int]bool{p.Size: true}, totals)
}

func TestGenerate_Cancelled(t *testing.T) {
	p, err := scenario.NewPlan(30, 3, 10_000)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = scenario.Generate(ctx, p)
	require.ErrorIs(t, err, context.Canceled)

	_, err = scenario.Generate(context.Background(), scenario.Plan{})
	require.ErrorIs(t, err, scenario.ErrInvalidParameter)
}

func TestScenarioHelpers(t *testing.T) {
	s := scenario.Scenario{1, 4, 9}
	require.True(t, s.Contains(4))
	require.False(t, s.Contains(5))
	require.Equal(t, "1,4,9", s.Key())

	require.NoError(t, s.Validate(10))
	require.ErrorIs(t, s.Validate(9), scenario.ErrInvalidScenario)
	require.ErrorIs(t, scenario.Scenario{2, 2}.Validate(5), scenario.ErrInvalidScenario)
	require.ErrorIs(t, scenario.Scenario{}.Validate(5), scenario.ErrInvalidScenario)
	require.Equal(t, "random", scenario.Random.String())
}
