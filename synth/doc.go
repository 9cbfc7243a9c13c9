// Package synth builds deterministic synthetic power networks for tests,
// examples and the `gridres synth` command.
//
// A Constructor appends buses and branches to a *network.Network. Several
// constructors passed to BuildNetwork produce disjoint sub-networks whose bus
// IDs continue from the previous one, which is handy for islanding fixtures.
//
// Bus policy (deterministic defaults):
//   - bus IDs are index+1 (MATPOWER-style, 1-based);
//   - every bus carries DefaultLoadMW of demand;
//   - the first bus of each constructor is the REF bus and carries the whole
//     sub-network's demand as generation, unless WithGenEvery spreads PV
//     generators across the sub-network.
//
// Branch policy: constant DefaultReactance p.u. unless WithReactance or
// WithReactanceRange says otherwise; RateMW from WithRating.
//
// Determinism: constructors emit buses in ascending index order and branches
// in a documented order; stochastic choices read only the seeded RNG.
package synth
