package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the extraction module.
type Metrics struct {
	// Document extractions by document type and outcome
	Documents *prometheus.CounterVec

	// Intent-derived extractions by processor type
	IntentExtractions *prometheus.CounterVec

	// Document processor call latency by document type
	ProcessLatency *prometheus.HistogramVec
}

// New registers the extraction metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Documents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_extraction_documents_total",
			Help: "Total document extractions by document type and outcome",
		}, []string{"document_type", "outcome"}), // outcome: "success", "error"

		IntentExtractions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_extraction_intent_total",
			Help: "Total intent-derived extractions by processor type",
		}, []string{"processor_type"}),

		ProcessLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "realeagent_extraction_process_duration_seconds",
			Help:    "Duration of document processor calls",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"document_type"}),
	}
}

// IncrementDocument records a document extraction outcome.
func (m *Metrics) IncrementDocument(docType, outcome string) {
	if m != nil {
		m.Documents.WithLabelValues(docType, outcome).Inc()
	}
}

// IncrementIntentExtraction records an intent-derived extraction.
func (m *Metrics) IncrementIntentExtraction(processorType string) {
	if m != nil {
		m.IntentExtractions.WithLabelValues(processorType).Inc()
	}
}

// ObserveProcessLatency records a processor call duration.
func (m *Metrics) ObserveProcessLatency(docType string, d time.Duration) {
	if m != nil {
		m.ProcessLatency.WithLabelValues(docType).Observe(d.Seconds())
	}
}
