// SPDX-License-Identifier: MIT
// Package: gridres/synth
//
// impl_simple.go - Path, Cycle, Star and Complete.
//
// Branch emission order:
//   - Path:     i -> i+1 for i = 0..n-2.
//   - Cycle:    Path, then n-1 -> 0.
//   - Star:     0 -> i for i = 1..n-1 (bus 0 is the hub).
//   - Complete: i -> j for i < j, i asc then j asc.

package synth

import (
	"fmt"

	"github.com/katalvlaran/gridres/network"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathBuses     = 2
	minCycleBuses    = 3
	minStarBuses     = 2
	minCompleteBuses = 1
)

// Path returns a Constructor for a radial feeder of n buses (n-1 branches).
func Path(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minPathBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathBuses, ErrTooFewVertices)
		}
		ids, err := addBuses(net, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addBranch(net, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring of n buses (n branches).
func Cycle(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minCycleBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleBuses, ErrTooFewVertices)
		}
		ids, err := addBuses(net, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addBranch(net, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a hub bus feeding n-1 leaves.
func Star(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minStarBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarBuses, ErrTooFewVertices)
		}
		ids, err := addBuses(net, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addBranch(net, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for a fully meshed network of n buses.
func Complete(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minCompleteBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteBuses, ErrTooFewVertices)
		}
		ids, err := addBuses(net, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addBranch(net, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
