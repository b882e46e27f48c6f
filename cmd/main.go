package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/adapters/http/api"
	"github.com/SumOfBesties/besties-layout/internal/adapters/repository"
	"github.com/SumOfBesties/besties-layout/internal/adapters/source"
	app "github.com/SumOfBesties/besties-layout/internal/app"
	"github.com/SumOfBesties/besties-layout/internal/config"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Create and start the service with configuration options
	opts := []app.Option{
		app.WithLogger(loggerInstance),
		app.WithStore(repository.NewMemStore(repository.WithSubscriberBuffer(cfg.SubscriberBuffer))),
		app.WithQueueCapacity(cfg.ImportQueueSize),
		app.WithCategoryConcurrency(cfg.CategoryConcurrency),
	}
	if cfg.SchedulePath != "" {
		opts = append(opts, app.WithSource(source.NewFileSource(cfg.SchedulePath)))
	}
	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Queue the initial import when configured
	if cfg.ImportOnStart && cfg.EventSlug != "" {
		if ok := svc.RequestImport(ctx, cfg.EventSlug, false); !ok {
			loggerInstance.Warn(ctx, "initial import could not be queued", logger.String("slug", cfg.EventSlug))
		}
	}

	// Start service metrics updater
	go startServiceMetricsUpdater(ctx, svc, cfg.ImportQueueSize)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startServiceMetricsUpdater starts a background goroutine that refreshes
// gauge metrics derived from service stats.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service, queueCapacity int) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(ctx, svc, queueCapacity)
		}
	}
}

// updateServiceMetrics updates service-level metrics.
func updateServiceMetrics(ctx context.Context, svc *app.Service, queueCapacity int) {
	stats := svc.Stats(ctx)

	if queueLen, ok := stats["queueLength"].(int); ok {
		metrics.UpdateQueueSize(queueLen)
		if queueCapacity > 0 {
			metrics.UpdateQueueUtilization(float64(queueLen) / float64(queueCapacity))
		}
	}
	if items, ok := stats["scheduleItems"].(int); ok {
		metrics.UpdateScheduleItemsTotal(items)
	}
	if talents, ok := stats["talentItems"].(int); ok {
		metrics.UpdateTalentTotal(talents)
	}
}
