package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/synth"
)

type branchKey struct{ From, To int }

func branchSet(n *network.Network) map[branchKey]network.Branch {
	m := make(map[branchKey]network.Branch)
	for _, br := range n.Branches() {
		m[branchKey{br.From, br.To}] = br
	}

	return m
}

func TestConstructors_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  synth.Constructor
		wantN int
		wantB int
		check func(t *testing.T, n *network.Network)
	}{
		{
			name: "Cycle(5)", ctor: synth.Cycle(5), wantN: 5, wantB: 5,
			check: func(t *testing.T, n *network.Network) {
				set := branchSet(n)
				for i := 1; i <= 5; i++ {
					_, ok := set[branchKey{i, i%5 + 1}]
					assert.True(t, ok, "ring branch %d", i)
				}
			},
		},
		{
			name: "Path(4)", ctor: synth.Path(4), wantN: 4, wantB: 3,
			check: func(t *testing.T, n *network.Network) {
				assert.Equal(t, network.Branch{From: 1, To: 2, Reactance: synth.DefaultReactance}, n.Branches()[0])
			},
		},
		{
			name: "Star(4)", ctor: synth.Star(4), wantN: 4, wantB: 3,
			check: func(t *testing.T, n *network.Network) {
				for _, br := range n.Branches() {
					assert.Equal(t, 1, br.From)
				}
			},
		},
		{name: "Complete(4)", ctor: synth.Complete(4), wantN: 4, wantB: 6},
		{name: "Complete(1)", ctor: synth.Complete(1), wantN: 1, wantB: 0},
		{name: "Grid(2,3)", ctor: synth.Grid(2, 3), wantN: 6, wantB: 7},
		{name: "RandomSparse(5,1)", ctor: synth.RandomSparse(5, 1), wantN: 5, wantB: 10},
		{name: "RandomSparse(5,0)", ctor: synth.RandomSparse(5, 0), wantN: 5, wantB: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := synth.BuildNetwork(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, n.BusCount())
			assert.Equal(t, tc.wantB, n.BranchCount())
			if tc.check != nil {
				tc.check(t, n)
			}
		})
	}
}

func TestBuildNetwork_GenerationBalancesLoad(t *testing.T) {
	for _, every := range []int{0, 1, 2, 3} {
		n, err := synth.BuildNetwork(nil, []synth.Option{synth.WithLoad(5), synth.WithGenEvery(every)}, synth.Path(7))
		require.NoError(t, err)

		load, gen := 0.0, 0.0
		for _, b := range n.Buses() {
			load += b.LoadMW
			gen += b.GenMW
		}
		assert.InDelta(t, 35.0, load, 1e-12)
		assert.InDelta(t, load, gen, 1e-12, "genEvery=%d", every)
		assert.Equal(t, network.Ref, n.Buses()[0].Type)
	}
}

func TestBuildNetwork_DisjointSubNetworks(t *testing.T) {
	n, err := synth.BuildNetwork(
		[]network.Option{network.WithName("two-rings")}, nil,
		synth.Cycle(3), synth.Cycle(4),
	)
	require.NoError(t, err)
	assert.Equal(t, "two-rings", n.Name())
	assert.Equal(t, 7, n.BusCount())

	buses := n.Buses()
	assert.Equal(t, 4, buses[3].ID)
	assert.Equal(t, network.Ref, buses[3].Type)
	assert.Equal(t, network.Branch{From: 4, To: 5, Reactance: synth.DefaultReactance}, n.Branches()[3])
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []synth.Option{synth.WithSeed(42), synth.WithReactanceRange(0.05, 0.2)}
	a, err := synth.BuildNetwork(nil, opts, synth.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []synth.Option{synth.WithSeed(42), synth.WithReactanceRange(0.05, 0.2)}
	b, err := synth.BuildNetwork(nil, opts, synth.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Branches(), b.Branches())
	for _, br := range a.Branches() {
		assert.GreaterOrEqual(t, br.Reactance, 0.05)
		assert.Less(t, br.Reactance, 0.2)
	}
}

func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor synth.Constructor
		opts []synth.Option
		want error
	}{
		{"cycle too small", synth.Cycle(2), nil, synth.ErrTooFewVertices},
		{"path too small", synth.Path(1), nil, synth.ErrTooFewVertices},
		{"star too small", synth.Star(1), nil, synth.ErrTooFewVertices},
		{"grid zero side", synth.Grid(0, 3), nil, synth.ErrTooFewVertices},
		{"sparse bad p", synth.RandomSparse(4, 1.5), nil, synth.ErrInvalidProbability},
		{"sparse no rng", synth.RandomSparse(4, 0.5), nil, synth.ErrNeedRandSource},
		{"nil constructor", nil, nil, synth.ErrConstructFailed},
		{
			"duplicate ids", synth.Path(3),
			[]synth.Option{synth.WithIDScheme(func(int) int { return 7 })},
			network.ErrDuplicateBus,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := synth.BuildNetwork(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnProgrammerError(t *testing.T) {
	assert.Panics(t, func() { synth.WithIDScheme(nil) })
	assert.Panics(t, func() { synth.WithRand(nil) })
	assert.Panics(t, func() { synth.WithReactance(0) })
	assert.Panics(t, func() { synth.WithReactanceRange(0.2, 0.1) })
	assert.Panics(t, func() { synth.WithLoad(-1) })
	assert.Panics(t, func() { synth.WithGenEvery(-1) })
}
