package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Metrics provides observability for the orchestrator pipeline.
type Metrics struct {
	// Pipeline runs by terminal state
	Pipelines *prometheus.CounterVec

	// Stage results by stage and outcome
	Stages *prometheus.CounterVec

	// Stage call latency
	StageLatency *prometheus.HistogramVec
}

// New registers the orchestrator metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Pipelines: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_pipeline_runs_total",
			Help: "Total pipeline runs by terminal state",
		}, []string{"state"}), // state: "done", "failed"

		Stages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_pipeline_stage_total",
			Help: "Total pipeline stage results by stage and outcome",
		}, []string{"stage", "outcome"}),

		StageLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "realeagent_pipeline_stage_duration_seconds",
			Help:    "Duration of upstream stage calls",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"stage"}),
	}
}

// IncrementPipeline records a finished pipeline run.
func (m *Metrics) IncrementPipeline(state string) {
	if m != nil {
		m.Pipelines.WithLabelValues(state).Inc()
	}
}

// ObserveStage records one stage result and its latency.
func (m *Metrics) ObserveStage(stage, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Stages.WithLabelValues(stage, outcome).Inc()
	if outcome != OutcomeSkipped {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}
