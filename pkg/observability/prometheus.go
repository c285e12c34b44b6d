package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sortwheel"

// Prometheus implements PipelineHooks and SchedulerHooks on a private
// Prometheus registry. Each instance owns its registry so several can
// coexist without collector conflicts.
type Prometheus struct {
	registry *prometheus.Registry

	frames        *prometheus.CounterVec
	units         *prometheus.CounterVec
	computations  *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	runs          *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Resumptions rendered, by algorithm.",
		}, []string{"algorithm"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Comparisons, shifts, swaps and writes performed, by algorithm.",
		}, []string{"algorithm"}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Computations finished, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}, []string{"stage"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_errors_total",
			Help:      "Pipeline stages that ended with an error.",
		}, []string{"stage"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs finished, by outcome.",
		}, []string{"outcome"}),
	}
	p.registry.MustRegister(p.frames, p.units, p.computations, p.stageDuration, p.stageErrors, p.runs)
	return p
}

// Handler serves the /metrics scrape endpoint for this registry.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

func (p *Prometheus) OnStageStart(context.Context, string, string) {}

func (p *Prometheus) OnStageComplete(_ context.Context, _ string, stage string, d time.Duration, err error) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		p.stageErrors.WithLabelValues(stage).Inc()
	}
}

func (p *Prometheus) OnRunComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	p.runs.WithLabelValues(outcome(err)).Inc()
}

func (p *Prometheus) OnFrame(_ context.Context, algorithm string) {
	p.frames.WithLabelValues(algorithm).Inc()
}

func (p *Prometheus) OnComputationComplete(_ context.Context, algorithm string, units, _ int, _ time.Duration, err error) {
	p.units.WithLabelValues(algorithm).Add(float64(units))
	p.computations.WithLabelValues(algorithm, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

var (
	_ PipelineHooks  = (*Prometheus)(nil)
	_ SchedulerHooks = (*Prometheus)(nil)
)
