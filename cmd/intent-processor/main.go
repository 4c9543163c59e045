package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"realeagent/internal/intent"
	"realeagent/internal/intent/gemini"
	"realeagent/internal/intent/handler"
	"realeagent/internal/intent/metrics"
	"realeagent/internal/platform/config"
	"realeagent/internal/platform/httpserver"
	"realeagent/internal/platform/logger"
)

func main() {
	cfg := config.IntentFromEnv()
	log := logger.New(handler.ServiceName, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("intent-processor stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Intent, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := gemini.New(ctx, gemini.Config{
		Project:  cfg.ProjectID,
		Location: cfg.Location,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
	})
	if err != nil {
		return err
	}
	info := generator.Info()
	log.Info("intent model configured",
		"model", info.Model,
		"backend", info.Backend,
		"project", info.Project,
		"location", info.Location,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client := intent.NewClient(generator, info,
		intent.WithLogger(log),
		intent.WithMetrics(metrics.New(reg)),
	)

	router := httpserver.NewRouter(handler.ServiceName, log, reg)
	handler.New(client, log).Register(router)

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}
