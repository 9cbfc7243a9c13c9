package cascade_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/gridres/cascade"
	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/scenario"
	"github.com/stretchr/testify/require"
)

// radial: 1(gen 100) - 2(load 30) - 3(load 50), plus 1-3 closing a ring.
func radial(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Build(
		[]network.Bus{
			{ID: 1, Type: network.Ref, GenMW: 100},
			{ID: 2, LoadMW: 30},
			{ID: 3, LoadMW: 50},
		},
		[]network.Branch{
			{From: 1, To: 2, Reactance: 0.1},
			{From: 2, To: 3, Reactance: 0.1},
			{From: 1, To: 3, Reactance: 0.2},
		},
	)
	require.NoError(t, err)
	return n
}

func TestIslanding_ShedsIslandedLoad(t *testing.T) {
	pop := population([]int{0}, []int{0, 2}, []int{1, 2}, []int{0, 1, 2})
	sim := &cascade.Islanding{Workers: 2}

	out, err := cascade.Run(context.Background(), sim, radial(t), pop, cascade.Settings{})
	require.NoError(t, err)
	// {0}: ring still connected. {0,2}: buses 2,3 islanded (80 MW).
	// {1,2}: bus 3 islanded (50). All out: 30+50.
	require.Equal(t, []float64{0, 80, 50, 80}, out)
}

func TestIslanding_BaselineAndParams(t *testing.T) {
	// Bus 4 is isolated with 10 MW of unserved load in the intact case.
	n := radial(t)
	_, err := n.AddBus(network.Bus{ID: 4, LoadMW: 10})
	require.NoError(t, err)

	pop := population([]int{1, 2})
	out, err := cascade.Run(context.Background(), &cascade.Islanding{}, n, pop, cascade.Settings{})
	require.NoError(t, err)
	require.Equal(t, []float64{50}, out, "intact deficit is subtracted")

	// Islands of fewer than 2 buses black out: bus 4 counts in the baseline too.
	out, err = cascade.Run(context.Background(), &cascade.Islanding{}, n, population([]int{0}),
		cascade.Settings{Params: map[string]string{"min_island_buses": "2"}})
	require.NoError(t, err)
	require.Equal(t, []float64{0}, out)

	_, err = cascade.Run(context.Background(), &cascade.Islanding{}, n, pop,
		cascade.Settings{Params: map[string]string{"min_island_buses": "x"}})
	require.ErrorIs(t, err, cascade.ErrSimulator)
}

func TestIslanding_VerboseLogsAndRejectsBadScenario(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sim := &cascade.Islanding{Logger: log}

	_, err := cascade.Run(context.Background(), sim, radial(t), population([]int{2}), cascade.Settings{Verbose: true})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "scenario evaluated")
	require.Contains(t, buf.String(), "shed_mw=0")
	// Branch 1-3 out: 1-2-3 still served, bus 3 two hops from the reference.
	require.Contains(t, buf.String(), "served_buses=3 max_hops=2")

	buf.Reset()
	_, err = cascade.Run(context.Background(), sim, radial(t), population([]int{0, 2}), cascade.Settings{Verbose: true})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "shed_mw=80 served_buses=1 max_hops=0")

	_, err = cascade.Run(context.Background(), sim, radial(t), population([]int{3}), cascade.Settings{})
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)

	_, err = cascade.Run(context.Background(), sim, network.New(), population(), cascade.Settings{})
	require.NoError(t, err)
}
