package resilience

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridres/cascade"
	"github.com/katalvlaran/gridres/config"
	"github.com/katalvlaran/gridres/metrics"
	"github.com/katalvlaran/gridres/network"
	"github.com/katalvlaran/gridres/report"
	"github.com/katalvlaran/gridres/scenario"
	"github.com/katalvlaran/gridres/tally"
	"github.com/katalvlaran/gridres/topology"
)

// Pipeline runs the full resilience analysis of one network.
type Pipeline struct {
	log         *slog.Logger
	sim         cascade.Simulator
	engine      *metrics.Engine
	instruments *Instruments
	reporter    scenario.Reporter
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSimulator injects the cascade collaborator. The default is an
// Islanding simulator sharing the pipeline logger.
func WithSimulator(s cascade.Simulator) Option {
	return func(p *Pipeline) { p.sim = s }
}

// WithEngine replaces the default metrics.Engine.
func WithEngine(e *metrics.Engine) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.engine = e
		}
	}
}

// WithInstruments attaches prometheus collectors.
func WithInstruments(ins *Instruments) Option {
	return func(p *Pipeline) { p.instruments = ins }
}

// WithReporter receives scenario-generation progress.
func WithReporter(r scenario.Reporter) Option {
	return func(p *Pipeline) { p.reporter = r }
}

// New returns a Pipeline with the given options applied.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		engine: metrics.NewEngine(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sim == nil {
		p.sim = &cascade.Islanding{Logger: p.log}
	}

	return p
}

// Run analyses net under cfg and returns the assembled report.
//
// Implementation:
//   - Stage 1: validate cfg and net; nothing is simulated on invalid input.
//   - Stage 2: topology and metrics.
//   - Stage 3: plan and generate the scenario population.
//   - Stage 4: one batched simulator call, then classify and tally.
//   - Stage 5: assemble the report.
//
// Errors:
//   - ErrNilNetwork, config.ErrInvalidConfig, network validation sentinels.
//   - scenario, cascade, tally and report sentinels, wrapped with the stage.
//   - ctx.Err() on cancellation or cfg.Timeout expiry.
func (p *Pipeline) Run(ctx context.Context, net *network.Network, cfg config.Run) (rep *report.Report, err error) {
	defer func() { p.instruments.done(err) }()

	if net == nil {
		return nil, ErrNilNetwork
	}
	start := time.Now()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = net.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	p.instruments.observe(PhaseValidate, start)
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	runID := uuid.New()
	log := p.log.With(slog.String("run_id", runID.String()), slog.String("case", net.Name()))
	log.InfoContext(ctx, "run started",
		slog.Int("buses", net.BusCount()),
		slog.Int("branches", net.BranchCount()),
		slog.Int("fail_min", cfg.FailMin),
		slog.Int("sample_size", cfg.SampleSize))

	start = time.Now()
	topo, err := topology.Build(net)
	if err != nil {
		return nil, fmt.Errorf("Run: topology: %w", err)
	}
	p.instruments.observe(PhaseTopology, start)

	start = time.Now()
	res, err := p.engine.Compute(ctx, topo, net.Branches())
	if err != nil {
		return nil, fmt.Errorf("Run: metrics: %w", err)
	}
	p.instruments.observe(PhaseMetrics, start)
	for _, n := range res.Notes {
		log.DebugContext(ctx, "metrics note", slog.String("note", n))
	}

	start = time.Now()
	plan, err := scenario.NewPlan(net.BranchCount(), cfg.FailMin, cfg.SampleSize,
		scenario.WithMaxScenarios(cfg.MaxScenarios))
	if err != nil {
		return nil, fmt.Errorf("Run: plan: %w", err)
	}
	pop, err := scenario.Generate(ctx, plan,
		scenario.WithSeed(cfg.Seed),
		scenario.WithWorkers(cfg.Workers),
		scenario.WithReporter(p.progress(ctx, log)))
	if err != nil {
		return nil, fmt.Errorf("Run: scenarios: %w", err)
	}
	p.instruments.observe(PhaseScenarios, start)
	log.InfoContext(ctx, "scenarios generated",
		slog.String("mode", pop.Mode.String()),
		slog.Int64("seed", pop.Seed),
		slog.Int("count", pop.Len()),
		slog.Uint64("total_combinations", plan.Total))

	start = time.Now()
	outcomes, err := cascade.Run(ctx, p.sim, net, pop, cascade.Settings{
		Verbose: cfg.Simulator.Verbose,
		Params:  cfg.Simulator.Params,
	})
	if err != nil {
		return nil, fmt.Errorf("Run: cascade: %w", err)
	}
	p.instruments.observe(PhaseCascade, start)

	start = time.Now()
	sum, err := tally.Aggregate(ctx, pop.Scenarios, outcomes, net.BranchCount(),
		tally.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("Run: tally: %w", err)
	}
	p.instruments.observe(PhaseTally, start)
	p.instruments.count(sum.Counters)

	start = time.Now()
	rep, err = report.Assemble(report.Input{
		RunID:      runID,
		CaseName:   net.Name(),
		Buses:      net.Buses(),
		Branches:   net.Branches(),
		Metrics:    res,
		Summary:    sum,
		Population: pop,
	})
	if err != nil {
		return nil, fmt.Errorf("Run: report: %w", err)
	}
	p.instruments.observe(PhaseReport, start)

	log.InfoContext(ctx, "run finished",
		slog.Int("valid_cascade", sum.Counters.ValidCascade),
		slog.Int("failed", sum.Counters.Failed),
		slog.Int("no_cascade", sum.Counters.NoCascade))

	return rep, nil
}

// progress forwards generation progress to the caller's reporter and to
// the debug log.
func (p *Pipeline) progress(ctx context.Context, log *slog.Logger) scenario.Reporter {
	return scenario.ReporterFunc(func(completed, total int, phase string) {
		log.DebugContext(ctx, "generation progress",
			slog.Int("completed", completed),
			slog.Int("total", total),
			slog.String("phase", phase))
		if p.reporter != nil {
			p.reporter.Report(completed, total, phase)
		}
	})
}
