package network

import "errors"

// Sentinel errors for network construction and validation.
var (
	// ErrDuplicateBus indicates a bus with the same id was already added.
	ErrDuplicateBus = errors.New("network: duplicate bus id")

	// ErrUnknownBus indicates a reference to a bus id that is not registered.
	ErrUnknownBus = errors.New("network: unknown bus id")

	// ErrSelfLoop indicates a branch whose endpoints are the same bus.
	ErrSelfLoop = errors.New("network: branch endpoints are the same bus")

	// ErrZeroReactance indicates a branch with reactance exactly zero;
	// its admittance 1/x is undefined.
	ErrZeroReactance = errors.New("network: branch reactance is zero")

	// ErrInvalidReactance indicates a NaN or infinite branch reactance.
	ErrInvalidReactance = errors.New("network: branch reactance is not finite")

	// ErrInvalidValue indicates a NaN or infinite bus or branch quantity.
	ErrInvalidValue = errors.New("network: value is not finite")

	// ErrUnknownBusType indicates an unrecognized bus type label.
	ErrUnknownBusType = errors.New("network: unknown bus type")
)
