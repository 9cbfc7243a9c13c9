// Package tally classifies cascade outcomes and reduces them into per-branch
// tallies and run-level counters.
//
// Classification of an outcome v:
//
//	v > 0   ValidCascade  every member branch gains +1 CascadeCount and +v TotalShed
//	v < 0   Failed        counted, no branch update
//	v == 0  NoCascade     counted, no branch update
//
// Aggregate validates its whole input before touching any accumulator, then
// splits the population into chunks. Each worker reduces its chunk into a
// private Summary; the fragments are merged sequentially in chunk order.
// Merge is associative and commutative per branch, so the result does not
// depend on scheduling.
package tally
