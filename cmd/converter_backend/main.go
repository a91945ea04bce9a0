package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/unit_converter_app/internal/adapters/exchangerate"
	"github.com/SscSPs/unit_converter_app/internal/core/services"
	"github.com/SscSPs/unit_converter_app/internal/handlers"
	"github.com/SscSPs/unit_converter_app/internal/middleware"
	"github.com/SscSPs/unit_converter_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Unit Converter API
// @version 1.0
// @description Converts values between units of length, weight, temperature, volume and currency.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	fetcher := exchangerate.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey, cfg.ExchangeRateHTTPTimeout, logger)
	serviceContainer := services.NewServiceContainer(cfg, fetcher, logger)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.RateLimit(rateLimiter))

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("rate_provider", fetcher.Name()),
		slog.Duration("rate_cache_ttl", cfg.RateCacheTTL),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
