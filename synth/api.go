// SPDX-License-Identifier: MIT
// Package: gridres/synth
//
// api.go - Constructor contract and BuildNetwork.
//
// Contract:
//   - A Constructor appends to the network; it never removes or rewrites.
//   - Bus IDs continue from the network's current bus count, so repeated
//     constructors yield disjoint sub-networks.
//   - Errors are sentinel-wrapped with method context; no runtime panics.

package synth

import (
	"fmt"

	"github.com/katalvlaran/gridres/network"
)

// Constructor appends a topology to n using the resolved config.
type Constructor func(n *network.Network, cfg config) error

// BuildNetwork creates a network with nopts, resolves bopts once and applies
// every constructor in order. The result is validated before it is returned.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildNetwork: ...".
//   - network validation errors (e.g. zero reactance from a custom scheme).
//
// Complexity: sum of the constructors' costs.
func BuildNetwork(nopts []network.Option, bopts []Option, cons ...Constructor) (*network.Network, error) {
	n := network.New(nopts...)
	cfg := newConfig(bopts...)

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildNetwork: constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return n, nil
}

// addBuses appends count buses and returns their IDs in index order.
func addBuses(n *network.Network, cfg config, method string, count int) ([]int, error) {
	base := n.BusCount()
	ids := make([]int, count)
	for i := 0; i < count; i++ {
		b := network.Bus{
			ID:     cfg.idFn(base + i),
			Type:   network.PQ,
			LoadMW: cfg.loadMW,
		}
		switch {
		case cfg.genEvery == 0 && i == 0:
			b.Type = network.Ref
			b.GenMW = cfg.loadMW * float64(count)
		case cfg.genEvery > 0 && i%cfg.genEvery == 0:
			b.Type = network.PV
			if i == 0 {
				b.Type = network.Ref
			}
			b.GenMW = cfg.loadMW * float64(min(cfg.genEvery, count-i))
		}
		if _, err := n.AddBus(b); err != nil {
			return nil, synthErrorf(method, fmt.Errorf("AddBus(%d): %w: %w", b.ID, ErrConstructFailed, err))
		}
		ids[i] = b.ID
	}

	return ids, nil
}

// addBranch appends one branch between bus IDs u and v.
func addBranch(n *network.Network, cfg config, method string, u, v int) error {
	br := network.Branch{
		From:      u,
		To:        v,
		Reactance: cfg.reactanceFn(cfg.rng),
		RateMW:    cfg.ratingMW,
	}
	if _, err := n.AddBranch(br); err != nil {
		return synthErrorf(method, fmt.Errorf("AddBranch(%d→%d): %w: %w", u, v, ErrConstructFailed, err))
	}

	return nil
}
