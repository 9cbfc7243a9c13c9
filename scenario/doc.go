// Package scenario builds the population of initial-contingency sets for a
// resilience run.
//
// A Scenario is a set of branch indices that fail together, stored as a
// strictly increasing slice of 0-based indices into the network's branch
// order. Its identity is the member set.
//
// NewPlan decides how a population is produced. With
// total = Σ_{k=1..failMin} C(branchCount, k):
//
//   - Exhaustive (sampleSize >= total): every k-combination for k = 1..failMin
//     in lexicographic order; the population size is exactly total.
//   - Random (otherwise): for each k, floor(sampleSize/failMin) draws of k
//     indices taken uniformly with replacement over [0, branchCount); repeats
//     collapse, so a drawn scenario has between 1 and k members. The
//     population size is failMin·floor(sampleSize/failMin).
//
// Generate fans the cardinalities out over an errgroup and concatenates the
// results in k order, so the population is totally ordered no matter which
// worker finishes first. Each k draws from its own RNG stream derived from
// the run seed; seed 0 selects a fresh clock-based seed, and the realized
// seed is recorded on the Population.
//
// Plans whose exhaustive total exceeds MaxScenarios are refused by NewPlan
// before anything is allocated.
package scenario
