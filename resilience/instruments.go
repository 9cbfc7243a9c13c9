package resilience

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridres/tally"
)

const namespace = "gridres"

// Phase labels used by the phase histogram.
const (
	PhaseValidate  = "validate"
	PhaseTopology  = "topology"
	PhaseMetrics   = "metrics"
	PhaseScenarios = "scenarios"
	PhaseCascade   = "cascade"
	PhaseTally     = "tally"
	PhaseReport    = "report"
)

// Instruments are the prometheus collectors a Pipeline updates.
type Instruments struct {
	// Runs counts Run calls by result ("ok" or "error").
	Runs *prometheus.CounterVec
	// Scenarios counts classified scenarios by class.
	Scenarios *prometheus.CounterVec
	// PhaseSeconds observes the wall time of every stage.
	PhaseSeconds *prometheus.HistogramVec
}

// NewInstruments builds the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewInstruments(reg prometheus.Registerer) (*Instruments, error) {
	ins := &Instruments{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Resilience runs by result.",
		}, []string{"result"}),
		Scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_total",
			Help:      "Simulated contingency scenarios by outcome class.",
		}, []string{"class"}),
		PhaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase"}),
	}
	if reg == nil {
		return ins, nil
	}
	for _, c := range []prometheus.Collector{ins.Runs, ins.Scenarios, ins.PhaseSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewInstruments: %w: %w", ErrRegister, err)
		}
	}

	return ins, nil
}

func (ins *Instruments) observe(phase string, start time.Time) {
	if ins == nil {
		return
	}
	ins.PhaseSeconds.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

func (ins *Instruments) count(c tally.Counters) {
	if ins == nil {
		return
	}
	ins.Scenarios.WithLabelValues(tally.NoCascade.String()).Add(float64(c.NoCascade))
	ins.Scenarios.WithLabelValues(tally.ValidCascade.String()).Add(float64(c.ValidCascade))
	ins.Scenarios.WithLabelValues(tally.Failed.String()).Add(float64(c.Failed))
}

func (ins *Instruments) done(err error) {
	if ins == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	ins.Runs.WithLabelValues(result).Inc()
}
