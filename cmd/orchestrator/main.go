package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"realeagent/internal/orchestrator"
	"realeagent/internal/orchestrator/adapters"
	"realeagent/internal/orchestrator/handler"
	"realeagent/internal/orchestrator/metrics"
	"realeagent/internal/platform/config"
	"realeagent/internal/platform/httpserver"
	"realeagent/internal/platform/logger"
)

func main() {
	base := config.ServerFromEnv()
	log := logger.New(handler.ServiceName, base.LogLevel)

	cfg, err := config.OrchestratorFromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Error("orchestrator stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Orchestrator, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := orchestrator.NewService(
		adapters.NewIntentClient(cfg.IntentURL, cfg.UpstreamTimeout),
		adapters.NewExtractionClient(cfg.ExtractorURL, cfg.UpstreamTimeout),
		adapters.NewComplianceClient(cfg.ComplianceURL, cfg.UpstreamTimeout),
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(metrics.New(reg)),
	)
	log.Info("upstream services configured",
		"intent_processor", cfg.IntentURL,
		"document_extractor", cfg.ExtractorURL,
		"compliance_validator", cfg.ComplianceURL,
		"upstream_timeout", cfg.UpstreamTimeout.String(),
	)

	router := httpserver.NewRouter(handler.ServiceName, log, reg)
	handler.New(svc, handler.Dependencies{
		IntentProcessor:     cfg.IntentURL,
		DocumentExtractor:   cfg.ExtractorURL,
		ComplianceValidator: cfg.ComplianceURL,
	}, log).Register(router)

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}
