// gridres runs N-k contingency resilience analyses on power network cases.
//
// Usage:
//
//	gridres analyze --case=<file> [--config=<file>] [--fail-min=N] [--sample-size=N] [--seed=S] [--format=table|markdown|json|yaml] [-o <file>]
//	gridres scenarios --case=<file> | --branches=N [--fail-min=N] [--sample-size=N]
//	gridres synth --kind=cycle|path|star|grid|complete|random [--n=N] -o <file>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
