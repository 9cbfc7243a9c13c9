package scenario

import "errors"

var (
	// ErrInvalidParameter is returned for negative counts or sizes.
	ErrInvalidParameter = errors.New("scenario: invalid parameter")

	// ErrPopulationTooLarge is returned when a plan would materialize more
	// scenarios than the configured limit.
	ErrPopulationTooLarge = errors.New("scenario: population too large")

	// ErrInvalidScenario is returned for a scenario that is empty, unsorted,
	// holds duplicates, or references a branch outside the network.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)
