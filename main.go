package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"loan-advisor/config"
	"loan-advisor/dataset"
	httpLayer "loan-advisor/http"
	"loan-advisor/logger"
	"loan-advisor/metrics"
	"loan-advisor/repository"
	"loan-advisor/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var loader dataset.Loader = dataset.NewHTTPLoader(
		cfg.Dataset.URL,
		cfg.Dataset.Timeout,
		dataset.WithObserver(m),
	)
	if cfg.Dataset.CacheTTL > 0 {
		cache, closeCache := newCache(ctx, cfg.Redis)
		defer closeCache()
		loader = dataset.NewCachedLoader(loader, cache, cfg.Dataset.CacheTTL, m)
	}

	recommendationService := service.NewRecommendationService(loader, cfg.Dataset.SampleSize)
	eligibilityService := service.NewEligibilityService(loader, cfg.Dataset.SampleSize)
	insightsService := service.NewInsightsService(loader, cfg.Dataset.SampleSize)
	advisorService := service.NewAdvisorService(cfg.Advisor)
	loanService := service.NewLoanService()

	if !cfg.Advisor.Enabled() {
		slog.Info("advisor API key not configured, explanations use the fallback text")
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Advisory: httpLayer.NewAdvisoryHandler(
			recommendationService,
			eligibilityService,
			insightsService,
			advisorService,
		),
		Loan:           httpLayer.NewLoanHandler(loanService),
		Limiter:        rateLimiter,
		Observer:       m,
		MetricsHandler: m.Handler(),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("loan advisor listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("error starting server", slog.Any("error", err))
		return
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during server shutdown", slog.Any("error", err))
	}

	slog.Info("server exited")
}

// newCache prefers Redis when an address is configured and falls back to an
// in-process cache when it is not, or when Redis cannot be reached.
func newCache(ctx context.Context, cfg config.RedisConfig) (repository.CacheRepository, func()) {
	if cfg.Addr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	client, err := repository.ConnectRedis(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		slog.Warn("redis unavailable, using in-memory dataset cache", slog.Any("error", err))
		return repository.NewMemoryCache(), func() {}
	}
	return repository.NewRedisCache(client, "loan-advisor:"), func() { _ = client.Close() }
}
