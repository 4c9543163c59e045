package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP holds the request metrics every service exposes.
type HTTP struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewHTTP registers request metrics on reg, labelled with the service name.
func NewHTTP(reg prometheus.Registerer, service string) *HTTP {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": service}
	return &HTTP{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "realeagent_http_requests_total",
			Help:        "Total HTTP requests by route and status",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "realeagent_http_request_duration_seconds",
			Help:        "HTTP request latency by route",
			ConstLabels: labels,
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"}),
	}
}

// ObserveRequest records one completed request.
func (m *HTTP) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.Latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
