package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-insights/internal/config"
	"expense-insights/internal/database"
	"expense-insights/internal/handlers"
	"expense-insights/internal/middleware"
	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
	"expense-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const sessionPruneInterval = time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.String("error", err.Error()))
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.LoadJWTKeys(); err != nil {
		return fmt.Errorf("failed to load JWT keys: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	// Repositories
	locationRepo := repositories.NewLocationRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	aggregateRepo := repositories.NewCommunityAggregateRepository(db.DB, cfg.Insights.MinUsersPerGroup)

	// Services
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	insightsLogger := services.NewInsightsLogger(logger)
	currencyService := services.NewCurrencyService(locationRepo, models.Currency{
		Code:   cfg.Insights.DefaultCurrencyCode,
		Symbol: cfg.Insights.DefaultCurrencySymbol,
	})
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromInsights(cfg.Insights))
	insightsService := services.NewCommunityInsightsService(
		aggregateRepo, currencyService, breaker, insightsLogger, metrics, cfg.Insights.QueryTimeout,
	)
	analyticsService := services.NewPersonalAnalyticsService(expenseRepo, userRepo, currencyService, insightsLogger, metrics)
	sessionRegistry := services.NewSearchSessionRegistry(insightsService, cfg.Insights.SessionIdleTimeout, metrics)
	tokenService := services.NewTokenService(&cfg.JWT)

	h := handlers.Handlers{
		Health:    handlers.NewHealthCheckHandler(db),
		Category:  handlers.NewCategoryHandler(),
		Location:  handlers.NewLocationHandler(services.NewLocationService(locationRepo)),
		Dashboard: handlers.NewDashboardHandler(analyticsService),
		Insights:  handlers.NewInsightsHandler(insightsService, sessionRegistry),
	}
	if cfg.IsDevelopment() {
		seeder := services.NewSeedService(
			locationRepo, userRepo, expenseRepo,
			services.NewExpenseGenerator(uint64(time.Now().UnixNano())), metrics,
		)
		h.Dev = handlers.NewDevHandler(tokenService, userRepo, locationRepo, seeder)
		logger.Warn("development endpoints enabled under /api/v1/dev")
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	e := newServer(cfg, logger, rateLimiter)
	handlers.RegisterRoutes(e, h, middleware.RequireAuth(tokenService))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessionRegistry.Run(gctx, sessionPruneInterval)
		return nil
	})
	g.Go(func() error {
		rateLimiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting expense insights API",
			slog.String("addr", addr),
			slog.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newServer(cfg *config.Config, logger *slog.Logger, rateLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("latency_ms", v.Latency.Milliseconds()),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
