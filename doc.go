// Package gridres measures how power networks hold up under simultaneous
// branch outages.
//
// A run takes a network case, enumerates or samples N-k contingency
// scenarios, hands them to a cascade simulator in one batch, tallies which
// branches take part in load-shedding cascades and joins those tallies with
// structural metrics of the network into one report.
//
// Packages:
//
//	network/    buses, branches and validation (thread-safe, read-only once built)
//	caseio/     YAML/JSON case files
//	synth/      deterministic synthetic networks (ring, path, star, grid, mesh, random)
//	matrix/     row-major dense storage and validators
//	topology/   adjacency, neighbor lists and self-admittance
//	bfs/        index-based breadth-first search and components
//	centrality/ degree, eigenvector, betweenness, closeness, clustering, edge betweenness
//	scenario/   plan + exhaustive / uniform random scenario generation
//	cascade/    simulator contract and the bundled islanding simulator
//	tally/      outcome classes and per-branch map-then-reduce tallies
//	metrics/    node and edge metric vectors
//	report/     the resilience report and its table/JSON/YAML renderings
//	resilience/ the end-to-end pipeline with slog logging and prometheus instruments
//	config/     run parameters from YAML and GRIDRES_* variables
//	cmd/gridres the CLI: analyze, scenarios, synth
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
// A 4-bus ring survives any single outage (N-1 secure); any two outages
// island part of the ring and shed its load.
//
//	go install github.com/katalvlaran/gridres/cmd/gridres@latest
package gridres
