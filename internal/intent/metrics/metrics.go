package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess      = "success"
	OutcomeParseError   = "parse_error"
	OutcomeServiceError = "service_error"
)

// Metrics provides observability for the intent module.
type Metrics struct {
	// Extraction outcomes: success, parse_error, service_error
	Extractions *prometheus.CounterVec

	// Model call latency
	GenerateLatency prometheus.Histogram
}

// New registers the intent metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Extractions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_intent_extractions_total",
			Help: "Total intent extractions by outcome",
		}, []string{"outcome"}),

		GenerateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "realeagent_intent_generate_duration_seconds",
			Help:    "Duration of language model calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
	}
}

// IncrementOutcome records an extraction outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Extractions.WithLabelValues(outcome).Inc()
	}
}

// ObserveGenerateLatency records a model call duration.
func (m *Metrics) ObserveGenerateLatency(d time.Duration) {
	if m != nil {
		m.GenerateLatency.Observe(d.Seconds())
	}
}
