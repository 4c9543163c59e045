package httpserver

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"realeagent/internal/platform/metrics"
	"realeagent/internal/platform/middleware"
	"realeagent/pkg/platform/middleware/metadata"
	"realeagent/pkg/platform/middleware/requesttime"
)

// RequestTimeout bounds every request handled by a service router.
const RequestTimeout = 60 * time.Second

// NewRouter returns a chi router carrying the middleware stack shared by every
// service and serving GET /metrics from reg.
func NewRouter(service string, logger *slog.Logger, reg *prometheus.Registry) chi.Router {
	httpMetrics := metrics.NewHTTP(reg, service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(logger, httpMetrics))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(RequestTimeout))
	r.Use(middleware.ContentTypeJSON)

	r.Method("GET", "/metrics", metrics.Handler(reg))
	return r
}
