package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridres/cascade"
	"github.com/katalvlaran/gridres/caseio"
	"github.com/katalvlaran/gridres/config"
	"github.com/katalvlaran/gridres/report"
	"github.com/katalvlaran/gridres/resilience"
)

type analyzeFlags struct {
	casePath    string
	configPath  string
	failMin     int
	sampleSize  int
	seed        int64
	workers     int
	timeout     time.Duration
	params      map[string]string
	format      string
	outPath     string
	metricsPath string
	verbose     bool
}

func newAnalyzeCmd() *cobra.Command {
	var fl analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [case-file]",
		Short: "Run a resilience analysis on a network case",
		Long: `Load a network case (YAML or JSON), generate contingency scenarios,
simulate them and print the resilience report.

Parameters come from the defaults, then --config, then GRIDRES_* environment
variables, then explicit flags.

Usage:
  gridres analyze case14.yaml
  gridres analyze --case=case14.yaml --fail-min=2 --sample-size=5000 --seed=7
  gridres analyze case14.yaml --format=json -o report.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fl.casePath == "" && len(args) > 0 {
				fl.casePath = args[0]
			}
			return runAnalyze(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.casePath, "case", "", "Network case file (.yaml, .yml or .json)")
	f.StringVar(&fl.configPath, "config", "", "Run configuration file (YAML)")
	f.IntVar(&fl.failMin, "fail-min", 1, "Largest number of simultaneous initial branch failures")
	f.IntVar(&fl.sampleSize, "sample-size", 1000, "Requested scenario count; exhaustive when the total is not larger")
	f.Int64Var(&fl.seed, "seed", 0, "Random sampling seed (0 picks one from the clock)")
	f.IntVar(&fl.workers, "workers", 0, "Worker pool size (0 uses GOMAXPROCS)")
	f.DurationVar(&fl.timeout, "timeout", 0, "Abort the run after this long (0 disables)")
	f.StringToStringVar(&fl.params, "param", nil, "Simulator parameter key=value (repeatable)")
	f.StringVar(&fl.format, "format", string(report.FormatTable), "Output format: table, markdown, json or yaml")
	f.StringVarP(&fl.outPath, "output", "o", "", "Write the report to this file instead of stdout")
	f.StringVar(&fl.metricsPath, "metrics-file", "", "Write run metrics in the prometheus text format to this file")
	f.BoolVarP(&fl.verbose, "verbose", "v", false, "Debug logging and per-scenario simulator detail")

	return cmd
}

func runAnalyze(cmd *cobra.Command, fl analyzeFlags) error {
	if fl.casePath == "" {
		return fmt.Errorf("a case file is required\n\nUsage: gridres analyze <case-file>")
	}
	format, err := report.ParseFormat(fl.format)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, fl)
	if err != nil {
		return err
	}
	net, err := caseio.Load(fl.casePath)
	if err != nil {
		return fmt.Errorf("load case: %w", err)
	}

	log := newLogger(cmd, fl.verbose)
	reg := prometheus.NewRegistry()
	ins, err := resilience.NewInstruments(reg)
	if err != nil {
		return err
	}
	p := resilience.New(
		resilience.WithLogger(log),
		resilience.WithInstruments(ins),
		resilience.WithSimulator(&cascade.Islanding{Workers: cfg.Workers, Logger: log}),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := p.Run(ctx, net, cfg)
	if fl.metricsPath != "" {
		if werr := prometheus.WriteToTextfile(fl.metricsPath, reg); werr != nil {
			log.Warn("cannot write metrics file", "path", fl.metricsPath, "error", werr)
		}
	}
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), fl.outPath, rep, format)
}

// resolveConfig layers defaults, the config file, the environment and the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command, fl analyzeFlags) (config.Run, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		if cfg, err = config.Load(fl.configPath); err != nil {
			return config.Run{}, err
		}
	}
	cfg = cfg.ApplyEnv()

	f := cmd.Flags()
	if f.Changed("fail-min") {
		cfg.FailMin = fl.failMin
	}
	if f.Changed("sample-size") {
		cfg.SampleSize = fl.sampleSize
	}
	if f.Changed("seed") {
		cfg.Seed = fl.seed
	}
	if f.Changed("workers") {
		cfg.Workers = fl.workers
	}
	if f.Changed("timeout") {
		cfg.Timeout = fl.timeout
	}
	if f.Changed("verbose") {
		cfg.Simulator.Verbose = fl.verbose
	}
	if len(fl.params) > 0 {
		if cfg.Simulator.Params == nil {
			cfg.Simulator.Params = make(map[string]string, len(fl.params))
		}
		for k, v := range fl.params {
			cfg.Simulator.Params[k] = v
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Run{}, err
	}

	return cfg, nil
}

func writeReport(stdout io.Writer, path string, rep *report.Report, f report.Format) error {
	if path == "" {
		return report.Write(stdout, rep, f)
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, rep, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(stdout, "Report: %s\n", path)

	return nil
}
