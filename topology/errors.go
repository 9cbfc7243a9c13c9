package topology

import "errors"

var (
	// ErrNilNetwork is returned when Build receives a nil network.
	ErrNilNetwork = errors.New("topology: network is nil")

	// ErrBusOutOfRange is returned for a bus index outside 0..Order()-1.
	ErrBusOutOfRange = errors.New("topology: bus index out of range")
)
