package metrics

import "errors"

var (
	// ErrMisaligned is returned when a library vector or matrix does not
	// match the bus count, or a branch endpoint is not in the topology.
	ErrMisaligned = errors.New("metrics: result not aligned with network")

	// ErrNilInput is returned for a nil topology.
	ErrNilInput = errors.New("metrics: nil input")
)
