package topology_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/topology"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, ids []int, brs []network.Branch) *network.Network {
	t.Helper()
	buses := make([]network.Bus, len(ids))
	for i, id := range ids {
		buses[i] = network.Bus{ID: id}
	}
	n, err := network.Build(buses, brs)
	require.NoError(t, err)
	return n
}

func TestBuild_Triangle(t *testing.T) {
	net := build(t, []int{10, 20, 30}, []network.Branch{
		{From: 10, To: 20, Reactance: 1},
		{From: 20, To: 30, Reactance: 1},
		{From: 30, To: 10, Reactance: 1},
	})
	topo, err := topology.Build(net)
	require.NoError(t, err)
	require.NoError(t, topo.Validate())

	require.Equal(t, 3, topo.Order())
	require.Equal(t, 3, topo.BranchCount())
	require.Equal(t, []float64{2, 2, 2}, topo.SelfAdmittance())
	require.Equal(t, []int{1, 2}, topo.Neighbors(0))
	require.True(t, topo.Adjacent(2, 0))
	require.False(t, topo.Adjacent(1, 1))
	require.True(t, topo.Connected())

	id, err := topo.BusID(2)
	require.NoError(t, err)
	require.Equal(t, 30, id)
	_, err = topo.BusID(3)
	require.ErrorIs(t, err, topology.ErrBusOutOfRange)

	arcs := topo.Arcs(0)
	require.Len(t, arcs, 2)
	require.Equal(t, 0, arcs[0].Edge)
	require.Equal(t, 2, arcs[1].Edge)
}

func TestBuild_ParallelBranchesAndIsolatedBus(t *testing.T) {
	net := build(t, []int{1, 2, 3}, []network.Branch{
		{From: 1, To: 2, Reactance: 0.5},
		{From: 2, To: 1, Reactance: 0.25},
	})
	topo, err := topology.Build(net)
	require.NoError(t, err)
	require.NoError(t, topo.Validate())

	require.Equal(t, []float64{6, 6, 0}, topo.SelfAdmittance())
	require.Equal(t, 1, topo.Degree(0))
	require.Len(t, topo.Arcs(0), 2)
	require.Empty(t, topo.Neighbors(2))
	require.False(t, topo.Connected())

	comps, err := topo.Components()
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2}}, comps)

	// One of the two parallel branches out keeps the pair connected.
	comps, err = topo.Components(0)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	comps, err = topo.Components(0, 1)
	require.NoError(t, err)
	require.Len(t, comps, 3)
}

func TestBuild_ReactanceErrors(t *testing.T) {
	net := build(t, []int{1, 2}, []network.Branch{{From: 1, To: 2, Reactance: 0}})
	_, err := topology.Build(net)
	require.ErrorIs(t, err, network.ErrZeroReactance)

	net = build(t, []int{1, 2}, []network.Branch{{From: 1, To: 2, Reactance: 1e-9}})
	_, err = topology.Build(net, topology.WithMinReactance(1e-6))
	require.ErrorIs(t, err, network.ErrZeroReactance)

	_, err = topology.Build(nil)
	require.ErrorIs(t, err, topology.ErrNilNetwork)
}

func TestBuild_ZeroBranches(t *testing.T) {
	topo, err := topology.Build(build(t, []int{1, 2}, nil))
	require.NoError(t, err)
	require.NoError(t, topo.Validate())
	require.Equal(t, []float64{0, 0}, topo.SelfAdmittance())

	a := topo.Adjacency()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}

	empty, err := topology.Build(network.New())
	require.NoError(t, err)
	require.Equal(t, 0, empty.Order())
	require.True(t, empty.Connected())
}

// TestBuild_RandomSymmetric checks symmetry, zero diagonal and isolated-bus
// admittance over random self-loop-free networks.
func TestBuild_RandomSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		n := 2 + rng.Intn(12)
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i + 1
		}
		var brs []network.Branch
		touched := make(map[int]bool)
		for k := rng.Intn(3 * n); k > 0; k-- {
			a, b := 1+rng.Intn(n), 1+rng.Intn(n)
			if a == b {
				continue
			}
			brs = append(brs, network.Branch{From: a, To: b, Reactance: 0.05 + rng.Float64()})
			touched[a], touched[b] = true, true
		}
		topo, err := topology.Build(build(t, ids, brs))
		require.NoError(t, err)
		require.NoError(t, topo.Validate())

		y := topo.SelfAdmittance()
		for i, id := range ids {
			if !touched[id] {
				require.Zero(t, y[i], "isolated bus %d", id)
			} else {
				require.Positive(t, y[i])
			}
		}
	}
}
