// SPDX-License-Identifier: MIT
// Package: gridres/synth
//
// impl_random_sparse.go - Erdős–Rényi-like RandomSparse(n, p).
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); 0 <= p <= 1 (else ErrInvalidProbability).
//   - An RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   - Unordered pairs {i,j}, i<j, are tried in i asc / j asc order, so a fixed
//     seed fixes the branch set.
//
// Complexity: O(n²) Bernoulli trials.

package synth

import (
	"fmt"

	"github.com/katalvlaran/gridres/network"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each possible branch
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addBuses(net, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case rng.Float64() >= p:
					continue
				}
				if err = addBranch(net, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
