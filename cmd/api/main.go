package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"buy-me-a-coffee/config"
	"buy-me-a-coffee/docs"
	httpHandler "buy-me-a-coffee/internal/adapter/http/handler"
	"buy-me-a-coffee/internal/adapter/http/middleware"
	"buy-me-a-coffee/internal/adapter/metrics"
	redisStorage "buy-me-a-coffee/internal/adapter/storage/redis"
	"buy-me-a-coffee/internal/core/domain"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/internal/core/upi"
	"buy-me-a-coffee/internal/service"
	"buy-me-a-coffee/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BMC_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("buy-me-a-coffee", cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("payee", cfg.Payee.Address).
		Msg("Starting Buy Me a Coffee")

	ctx := context.Background()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Core services
	builder := upi.NewBuilder(domain.PayeeDefaults{
		PayeeAddress: cfg.Payee.Address,
		PayeeName:    cfg.Payee.Name,
		Note:         cfg.Payee.Note,
		Presets:      cfg.Payee.Presets,
	})
	var linkMetrics ports.LinkMetrics
	if m != nil {
		linkMetrics = m
	}
	linkSvc := service.NewLinkService(builder, cfg.QR.DefaultSize, linkMetrics, log)

	deps := httpHandler.RouterDeps{
		LinkSvc:        linkSvc,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit),
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		QRCacheMaxAge:  cfg.QR.CacheMaxAge,
		OpenAPISpec:    docs.OpenAPI,
		Logger:         log,
	}

	// Redis is optional: it only backs rate limiting.
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		deps.RateLimiter = redisStorage.NewRateLimitStore(rdb)
		deps.HealthCheckers = append(deps.HealthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Redis disabled, rate limiting off")
	}

	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
