package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"realeagent/internal/extraction"
	"realeagent/internal/extraction/documentai"
	"realeagent/internal/extraction/handler"
	"realeagent/internal/extraction/metrics"
	"realeagent/internal/platform/config"
	"realeagent/internal/platform/httpserver"
	"realeagent/internal/platform/logger"
)

func main() {
	cfg := config.ExtractorFromEnv()
	log := logger.New(handler.ServiceName, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("document-extractor stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Extractor, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ProjectID == "" {
		return errors.New("PROJECT_ID is required")
	}

	fromFile, err := extraction.LoadProcessorFile(cfg.ProcessorFile)
	if err != nil {
		return err
	}
	registry := extraction.NewProcessorRegistry(extraction.MergeProcessorIDs(fromFile, cfg.ProcessorIDs))
	if missing := registry.Missing(); len(missing) > 0 {
		log.Warn("document types without a processor", "missing", missing)
	}

	svc, err := documentai.NewService(ctx, cfg.Location)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	extractor := extraction.NewService(documentai.NewProcessor(svc), registry, cfg.ProjectID, cfg.Location,
		extraction.WithLogger(log),
		extraction.WithMetrics(metrics.New(reg)),
	)

	router := httpserver.NewRouter(handler.ServiceName, log, reg)
	handler.New(extractor, log).Register(router)

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}
