package cascade

import "errors"

var (
	// ErrNilSimulator is returned when Run is given no simulator.
	ErrNilSimulator = errors.New("cascade: simulator is nil")

	// ErrSimulator wraps any error returned by the simulator.
	ErrSimulator = errors.New("cascade: simulator failed")

	// ErrMisaligned is returned when the outcome count differs from the
	// population size.
	ErrMisaligned = errors.New("cascade: outcomes not aligned with scenarios")

	// ErrInvalidOutcome is returned for a NaN outcome.
	ErrInvalidOutcome = errors.New("cascade: outcome is NaN")
)
