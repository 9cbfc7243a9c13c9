package tally

import "errors"

var (
	// ErrMisaligned is returned when outcome and scenario counts differ, or
	// when summaries of different branch counts are merged.
	ErrMisaligned = errors.New("tally: outcomes not aligned with scenarios")

	// ErrMalformedScenario is returned for a scenario referencing a branch
	// the network does not have, or otherwise not a valid member set.
	ErrMalformedScenario = errors.New("tally: malformed scenario")

	// ErrInvalidOutcome is returned for a NaN outcome.
	ErrInvalidOutcome = errors.New("tally: outcome is NaN")

	// ErrInvalidParameter is returned for a negative branch count.
	ErrInvalidParameter = errors.New("tally: invalid parameter")
)
