package resilience

import "errors"

var (
	// ErrNilNetwork indicates Run was called without a network.
	ErrNilNetwork = errors.New("resilience: network is nil")

	// ErrRegister indicates instruments could not be registered.
	ErrRegister = errors.New("resilience: cannot register instruments")
)
