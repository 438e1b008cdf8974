package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	httpapi "amply/internal/http"
	"amply/internal/intake/engine"
	"amply/internal/intake/handler"
	"amply/internal/intake/service"
	"amply/internal/intake/store"
	"amply/internal/intake/validation"
	"amply/internal/platform/config"
	"amply/internal/platform/httpserver"
	"amply/internal/platform/logger"
	"amply/internal/platform/metrics"
	"amply/internal/platform/tracing"
	"amply/pkg/platform/audit/publisher"
	auditmemory "amply/pkg/platform/audit/store/memory"
)

const serviceName = "amply"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/intake.
func main() {
	if err := run(); err != nil {
		slog.Error("amply exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := tracing.New(ctx, cfg.Server.OTLPEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	m := metrics.New(prometheus.DefaultRegisterer)

	auditor := publisher.NewPublisher(auditmemory.NewInMemoryStore(),
		publisher.WithAsyncBuffer(1024),
		publisher.WithLogger(log),
	)
	defer auditor.Close()

	intake := service.New(
		store.NewInMemoryEntryStore(),
		engine.New(validation.New(cfg.Reference.Rules())),
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithAuditPublisher(auditor),
		service.WithTracer(tp.Tracer("amply/intake")),
	)
	router := httpapi.NewRouter(prometheus.DefaultGatherer,
		handler.New(intake, cfg.Reference, log, m, cfg.Server.MaxBodyBytes),
	)

	log.Info("starting amply",
		"addr", cfg.Server.Addr,
		"countries", len(cfg.Reference.Countries),
		"risk_levels", cfg.Reference.RiskLevels,
		"allowed_domains", cfg.Reference.AllowedDomains,
		"min_year", cfg.Reference.MinYear,
		"tracing", cfg.Server.OTLPEndpoint != "",
	)
	if err := httpserver.Run(ctx, httpserver.New(cfg.Server.Addr, router), cfg.Server.ShutdownTimeout); err != nil {
		return err
	}
	log.Info("amply stopped")
	return nil
}
