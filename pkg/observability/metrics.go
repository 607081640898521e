package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for engine runs.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Steps    *prometheus.CounterVec
	RunSteps prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of completed runs by status",
			},
			[]string{"status"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of transitions applied, by source state",
			},
			[]string{"state"},
		),
		RunSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turing_run_steps",
				Help:    "Number of steps per run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.RunSteps)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(string(e.Entry.State)).Inc()
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			m.Runs.WithLabelValues(string(e.Status)).Inc()
			m.RunSteps.Observe(float64(e.Steps))
		},
	}
}
