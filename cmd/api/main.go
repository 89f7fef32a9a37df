package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wolfman30/mgagency-site/internal/api/router"
	"github.com/wolfman30/mgagency-site/internal/app/bootstrap"
	"github.com/wolfman30/mgagency-site/internal/catalog"
	appconfig "github.com/wolfman30/mgagency-site/internal/config"
	"github.com/wolfman30/mgagency-site/internal/observability/metrics"
	"github.com/wolfman30/mgagency-site/internal/quote"
	"github.com/wolfman30/mgagency-site/internal/site"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	logger.Info("starting mgagency site",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	handler, cleanup, err := setup(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Submit waits on two relay calls.
		WriteTimeout: 2*cfg.RelayTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setup wires the page, the quote flow and metrics into one handler. The
// returned cleanup releases the Redis client when one was opened.
func setup(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (http.Handler, func(), error) {
	metricsHandler, quoteMetrics := setupMetrics()
	c := catalog.Parse(cfg.ServiceCatalog)

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
	store := bootstrap.BuildSessionStore(redisClient, cfg, logger)

	sender, err := bootstrap.BuildRelaySender(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	dispatcher, err := bootstrap.BuildDispatcher(cfg, sender, quoteMetrics, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	content := site.DefaultContent()
	if cfg.SiteBrand != "" {
		content.Brand = cfg.SiteBrand
	}
	renderer, err := site.NewRenderer(site.Options{
		Content: content,
		Catalog: c,
		Pretty:  cfg.IsDevelopment(),
		Logger:  logger,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Info("quote flow ready", "services", c.Len())
	return router.New(&router.Config{
		Logger:             logger,
		Site:               renderer,
		Quote:              quote.NewHandler(store, dispatcher, c, logger),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		CompressLevel:      cfg.CompressLevel,
	}), cleanup, nil
}

func setupMetrics() (http.Handler, *metrics.QuoteMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewQuoteMetrics(reg)
}
