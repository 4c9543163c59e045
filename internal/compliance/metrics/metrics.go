package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module.
type Metrics struct {
	// Evaluation outcomes by verdict
	Evaluations *prometheus.CounterVec

	// Mandatory forms missing from submissions, by form
	MissingForms *prometheus.CounterVec

	// Requests rejected for malformed property details, by field
	InvalidDetails *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram
}

// New registers the compliance metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_compliance_evaluations_total",
			Help: "Total compliance evaluations by verdict",
		}, []string{"compliant"}), // "true", "false"

		MissingForms: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_compliance_missing_forms_total",
			Help: "Mandatory forms missing from submitted forms",
		}, []string{"form"}),

		InvalidDetails: f.NewCounterVec(prometheus.CounterOpts{
			Name: "realeagent_compliance_invalid_details_total",
			Help: "Evaluations rejected for malformed property details by field",
		}, []string{"field"}),

		EvaluateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "realeagent_compliance_evaluate_duration_seconds",
			Help:    "Duration of a compliance evaluation including parsing",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

// IncrementEvaluation records a verdict.
func (m *Metrics) IncrementEvaluation(compliant bool) {
	if m == nil {
		return
	}
	label := "false"
	if compliant {
		label = "true"
	}
	m.Evaluations.WithLabelValues(label).Inc()
}

// IncrementMissingForms records each missing mandatory form.
func (m *Metrics) IncrementMissingForms(forms []string) {
	if m == nil {
		return
	}
	for _, f := range forms {
		m.MissingForms.WithLabelValues(f).Inc()
	}
}

// IncrementInvalidDetails records a rejected field.
func (m *Metrics) IncrementInvalidDetails(field string) {
	if m != nil {
		m.InvalidDetails.WithLabelValues(field).Inc()
	}
}

// ObserveEvaluateLatency records an evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
