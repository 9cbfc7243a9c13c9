// Package network defines the transmission-network model consumed by every
// other gridres package: an ordered bus list and an ordered branch list.
//
// Bus order and branch order are significant. Every index-based output in
// the module (adjacency rows, metric vectors, scenario members, tallies,
// report rows) is aligned to them, so a Network is append-only: buses and
// branches can be added but never removed or reordered.
//
// All methods are safe for concurrent use. Accessors return copies; once a
// Network has passed Validate it is treated as read-only by the pipeline.
//
// Errors:
//
//	ErrDuplicateBus     - a bus id is already registered.
//	ErrUnknownBus       - a branch endpoint or lookup references a missing bus.
//	ErrSelfLoop         - a branch connects a bus to itself.
//	ErrZeroReactance    - a branch reactance is exactly zero.
//	ErrInvalidReactance - a branch reactance is NaN or ±Inf.
//	ErrInvalidValue     - a load, generation or rating is NaN or ±Inf.
//	ErrUnknownBusType   - a bus type string cannot be parsed.
package network
