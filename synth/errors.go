// SPDX-License-Identifier: MIT
// Package: gridres/synth
//
// Sentinel errors. Callers branch with errors.Is; constructors attach the
// method and parameters with %w.

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("synth: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("synth: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("synth: rng is required")

	// ErrConstructFailed indicates a nil constructor or a rejected network mutation.
	ErrConstructFailed = errors.New("synth: construction failed")
)

// synthErrorf attaches method context to an underlying error.
func synthErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
