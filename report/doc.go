// Package report joins topology, metric and tally outputs into one
// fixed-shape Resilience Report and renders it as a table, JSON or YAML.
//
// Assemble performs no computation. It checks that every per-bus vector has
// one entry per bus and every per-branch vector one entry per branch, that
// the counters add up, and that the tallies cover the realized population;
// any violation is ErrInconsistent.
package report
