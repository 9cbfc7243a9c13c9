package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridres/caseio"
	"github.com/katalvlaran/gridres/scenario"
)

type scenariosFlags struct {
	casePath     string
	branches     int
	failMin      int
	sampleSize   int
	maxScenarios int
}

func newScenariosCmd() *cobra.Command {
	var fl scenariosFlags
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Preview the scenario plan without simulating",
		Long: `Report whether a run would be exhaustive or random, the combinatorial
total and the exact population size.

Usage:
  gridres scenarios --case=case14.yaml --fail-min=3 --sample-size=10000
  gridres scenarios --branches=186 --fail-min=2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenarios(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.casePath, "case", "", "Network case file; its branch count is used")
	f.IntVar(&fl.branches, "branches", 0, "Branch count when no case is given")
	f.IntVar(&fl.failMin, "fail-min", 1, "Largest number of simultaneous initial branch failures")
	f.IntVar(&fl.sampleSize, "sample-size", 1000, "Requested scenario count")
	f.IntVar(&fl.maxScenarios, "max-scenarios", scenario.DefaultMaxScenarios, "Refuse plans larger than this")

	return cmd
}

func runScenarios(cmd *cobra.Command, fl scenariosFlags) error {
	branches := fl.branches
	if fl.casePath != "" {
		net, err := caseio.Load(fl.casePath)
		if err != nil {
			return fmt.Errorf("load case: %w", err)
		}
		branches = net.BranchCount()
	}
	plan, err := scenario.NewPlan(branches, fl.failMin, fl.sampleSize,
		scenario.WithMaxScenarios(fl.maxScenarios))
	if err != nil {
		return err
	}

	total := strconv.FormatUint(plan.Total, 10)
	if plan.Saturated {
		total = ">" + total
	}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Branches", "Fail min", "Sample size", "Total", "Mode", "Size", "Per k"})
	t.AppendRow(table.Row{plan.BranchCount, plan.FailMin, plan.SampleSize, total, plan.Mode.String(), plan.Size, plan.PerCardinality})
	t.Render()

	return nil
}
