package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"realeagent/internal/compliance"
	"realeagent/internal/compliance/handler"
	"realeagent/internal/compliance/metrics"
	"realeagent/internal/platform/config"
	"realeagent/internal/platform/httpserver"
	"realeagent/internal/platform/logger"
)

func main() {
	cfg := config.ComplianceFromEnv()
	log := logger.New(handler.ServiceName, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("compliance-validator stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Compliance, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := compliance.NewService(
		compliance.WithLogger(log),
		compliance.WithMetrics(metrics.New(reg)),
	)

	router := httpserver.NewRouter(handler.ServiceName, log, reg)
	handler.New(svc, log).Register(router)

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}
