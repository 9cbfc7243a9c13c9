package network_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridres/network"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Build(
		[]network.Bus{{ID: 1, Type: network.Ref, GenMW: 100}, {ID: 2, LoadMW: 40}, {ID: 3, LoadMW: 60}},
		[]network.Branch{{From: 1, To: 2, Reactance: 1}, {From: 2, To: 3, Reactance: 1}, {From: 3, To: 1, Reactance: 1}},
		network.WithName("triangle"),
	)
	require.NoError(t, err)
	return n
}

func TestBuild_PreservesOrder(t *testing.T) {
	n := triangle(t)

	require.Equal(t, "triangle", n.Name())
	require.Equal(t, network.DefaultBaseMVA, n.BaseMVA())
	require.Equal(t, 3, n.BusCount())
	require.Equal(t, 3, n.BranchCount())

	buses := n.Buses()
	require.Equal(t, []int{1, 2, 3}, []int{buses[0].ID, buses[1].ID, buses[2].ID})
	require.Equal(t, network.PQ, buses[1].Type, "zero type defaults to PQ")

	idx, ok := n.BusIndex(3)
	require.True(t, ok)
	require.Equal(t, 2, idx)
	require.NoError(t, n.Validate())
}

func TestAccessorsReturnCopies(t *testing.T) {
	n := triangle(t)

	brs := n.Branches()
	brs[0].Reactance = 99
	require.Equal(t, 1.0, n.Branches()[0].Reactance)

	cp := n.Clone()
	_, err := cp.AddBus(network.Bus{ID: 4})
	require.NoError(t, err)
	require.Equal(t, 3, n.BusCount())
	require.Equal(t, 4, cp.BusCount())
}

func TestAddBus_Errors(t *testing.T) {
	n := network.New()
	_, err := n.AddBus(network.Bus{ID: 7})
	require.NoError(t, err)

	_, err = n.AddBus(network.Bus{ID: 7})
	require.ErrorIs(t, err, network.ErrDuplicateBus)

	_, err = n.AddBus(network.Bus{ID: 8, LoadMW: math.NaN()})
	require.ErrorIs(t, err, network.ErrInvalidValue)

	_, err = n.Bus(9)
	require.ErrorIs(t, err, network.ErrUnknownBus)
}

func TestAddBranch_Errors(t *testing.T) {
	n := network.New()
	_, _ = n.AddBus(network.Bus{ID: 1})
	_, _ = n.AddBus(network.Bus{ID: 2})

	tests := []struct {
		name string
		br   network.Branch
		want error
	}{
		{"unknown from", network.Branch{From: 5, To: 2, Reactance: 1}, network.ErrUnknownBus},
		{"unknown to", network.Branch{From: 1, To: 5, Reactance: 1}, network.ErrUnknownBus},
		{"self loop", network.Branch{From: 1, To: 1, Reactance: 1}, network.ErrSelfLoop},
		{"nan reactance", network.Branch{From: 1, To: 2, Reactance: math.NaN()}, network.ErrInvalidReactance},
		{"inf rating", network.Branch{From: 1, To: 2, Reactance: 1, RateMW: math.Inf(1)}, network.ErrInvalidValue},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.AddBranch(tc.br)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
	require.Equal(t, 0, n.BranchCount())
}

func TestValidate_ZeroReactance(t *testing.T) {
	n := network.New()
	_, _ = n.AddBus(network.Bus{ID: 1})
	_, _ = n.AddBus(network.Bus{ID: 2})
	_, err := n.AddBranch(network.Branch{From: 1, To: 2, Reactance: 0})
	require.NoError(t, err)

	require.ErrorIs(t, n.Validate(), network.ErrZeroReactance)
}

func TestParseBusType(t *testing.T) {
	for in, want := range map[string]network.BusType{"": network.PQ, "PV": network.PV, "slack": network.Ref, " ref ": network.Ref} {
		got, err := network.ParseBusType(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := network.ParseBusType("swing?")
	require.ErrorIs(t, err, network.ErrUnknownBusType)
	require.Equal(t, "REF", network.Ref.String())
}
