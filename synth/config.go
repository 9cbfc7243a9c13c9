package synth

import "math/rand"

// Deterministic defaults.
const (
	DefaultLoadMW    = 10.0
	DefaultReactance = 0.1
	defaultRatingMW  = 0.0
)

// config aggregates all constructor knobs. It is passed by value.
type config struct {
	// idFn maps a global bus index to a bus ID.
	idFn func(int) int
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// reactanceFn produces the reactance of each new branch.
	reactanceFn func(*rand.Rand) float64
	loadMW      float64
	ratingMW    float64
	// genEvery > 0 turns every genEvery-th bus of a sub-network into a
	// generator; 0 keeps a single REF generator per sub-network.
	genEvery int
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:        func(i int) int { return i + 1 },
		reactanceFn: func(*rand.Rand) float64 { return DefaultReactance },
		loadMW:      DefaultLoadMW,
		ratingMW:    defaultRatingMW,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
