// Package resilience wires the gridres stages into one run:
//
//	network.Validate → topology.Build → metrics.Engine.Compute
//	  → scenario.NewPlan/Generate → cascade.Run → tally.Aggregate
//	  → report.Assemble
//
// A Pipeline is configured with functional options (logger, simulator,
// centrality library, instruments) and is safe for concurrent use: every
// Run works on its own data and only shares the read-only network.
//
// Observability: each stage is timed into a prometheus histogram and
// classified scenarios are counted per class when instruments are attached.
// Logging goes through log/slog; the default logger discards.
package resilience
