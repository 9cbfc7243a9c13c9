package synth

import (
	"math"
	"math/rand"
)

// Option customizes a BuildNetwork call.
// Option constructors panic on programmer error (nil functions, impossible
// ranges); constructors themselves only ever return errors.
type Option func(*config)

// WithIDScheme sets the bus ID generator: global index -> ID.
// IDs must be unique; network.AddBus rejects duplicates.
func WithIDScheme(fn func(int) int) Option {
	if fn == nil {
		panic("synth: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand attaches an explicit RNG.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it to lock RandomSparse outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithReactance sets a constant branch reactance (p.u.). Panics unless x is
// finite and non-zero.
func WithReactance(x float64) Option {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		panic("synth: WithReactance requires a finite non-zero value")
	}

	return func(c *config) {
		c.reactanceFn = func(*rand.Rand) float64 { return x }
	}
}

// WithReactanceRange draws each reactance uniformly from [lo, hi). Without an
// RNG the midpoint is used. Panics unless 0 < lo <= hi.
func WithReactanceRange(lo, hi float64) Option {
	if !(lo > 0) || hi < lo || math.IsInf(hi, 0) {
		panic("synth: WithReactanceRange requires 0 < lo <= hi")
	}

	return func(c *config) {
		c.reactanceFn = func(r *rand.Rand) float64 {
			if r == nil {
				return (lo + hi) / 2
			}

			return lo + r.Float64()*(hi-lo)
		}
	}
}

// WithLoad sets the per-bus demand in MW. Panics on negative or non-finite values.
func WithLoad(mw float64) Option {
	if mw < 0 || math.IsNaN(mw) || math.IsInf(mw, 0) {
		panic("synth: WithLoad requires a finite non-negative value")
	}

	return func(c *config) { c.loadMW = mw }
}

// WithRating sets RateMW on every branch. Panics on negative or non-finite values.
func WithRating(mw float64) Option {
	if mw < 0 || math.IsNaN(mw) || math.IsInf(mw, 0) {
		panic("synth: WithRating requires a finite non-negative value")
	}

	return func(c *config) { c.ratingMW = mw }
}

// WithGenEvery makes every k-th bus of a sub-network a generator producing
// k buses' worth of demand (the first one is REF, the rest PV). k == 0
// restores the single-generator default. Panics on negative k.
func WithGenEvery(k int) Option {
	if k < 0 {
		panic("synth: WithGenEvery(k<0)")
	}

	return func(c *config) { c.genEvery = k }
}
