// Package cascade drives the cascade simulator over a scenario population.
//
// The simulator is a collaborator behind the Simulator interface: given the
// network, the full ordered population and Settings it returns one outcome
// per scenario. Run makes exactly one batched call, performs no retries and
// checks the shape of what comes back:
//
//   - outcome > 0   converged with that much load shed (MW)
//   - outcome == 0  converged, no cascade
//   - outcome < 0   did not converge (NonConverged is the canonical value)
//
// Non-convergence is an outcome, not an error. A length mismatch or a NaN
// outcome is an internal-consistency error and aborts the run.
//
// Islanding is a bundled Simulator for running the pipeline without an AC
// solver: it removes the scenario's branches and sheds the demand that no
// longer has generation in its island.
package cascade
