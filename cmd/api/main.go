// Package main is the entrypoint for the customer query API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/custview/custview/internal/cache"
	"github.com/custview/custview/internal/config"
	"github.com/custview/custview/internal/handler"
	"github.com/custview/custview/internal/logging"
	"github.com/custview/custview/internal/metrics"
	"github.com/custview/custview/internal/middleware"
	"github.com/custview/custview/internal/repository"
	"github.com/custview/custview/internal/server"
	"github.com/custview/custview/internal/service"
)

func main() {
	ctx := context.Background()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	dsn := cfg.DatabaseDSN()
	repo, err := repository.New(ctx, dsn)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", logging.SanitizeError(err, dsn, cfg.DBPassword)),
			slog.String("database_url", logging.RedactURL(dsn)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The cache is optional; the interface stays nil when it is disabled so
	// the service never sees a typed nil.
	var (
		customerCache service.CustomerCache
		cacheChecker  handler.HealthChecker
		cacheClient   *cache.Cache
	)
	if cfg.CacheEnabled() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL, cfg.CustomerCacheTTL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", logging.SanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", logging.RedactURL(cfg.RedisURL)),
			)
			repo.Close()
			os.Exit(1)
		}
		customerCache = cacheClient
		cacheChecker = cacheClient
		logger.Info("connected to Redis", "ttl", cfg.CustomerCacheTTL)
	} else {
		logger.Info("customer cache disabled")
	}

	recorder := metrics.NewInMemory()
	customerService := service.NewCustomerService(repo, customerCache, logger, recorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheChecker)
	customerHandler := handler.NewCustomerHandler(customerService, logger)

	r := setupRouter(h, healthHandler, customerHandler, cfg, logger)

	srv := server.New(r, server.Config{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	// LIFO: metrics summary first, then Redis, then the pool.
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		repo.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}
	srv.OnShutdown("metrics", func(ctx context.Context) error {
		logSummary(logger, recorder.Snapshot())
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"cache_enabled", cfg.CacheEnabled(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	customerHandler *handler.CustomerHandler,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/", h.Info)

	r.Get("/customers", customerHandler.List)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

func logSummary(logger *slog.Logger, snap metrics.Snapshot) {
	var avgMs float64
	if snap.CustomersListCount > 0 {
		avgMs = float64(snap.CustomersListTotalNanos) / float64(snap.CustomersListCount) / 1e6
	}
	logger.Info("customer list summary",
		"requests", snap.CustomersListCount,
		"errors", snap.CustomersListErrors,
		"cache_hits", snap.CustomersCacheHits,
		"cache_misses", snap.CustomersCacheMisses,
		"avg_ms", avgMs,
	)
}
