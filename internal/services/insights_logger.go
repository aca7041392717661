package services

import (
	"context"
	"log/slog"
	"time"

	"expense-insights/internal/models"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID stores the request ID so service logs can be correlated with the HTTP request
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored by WithRequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// InsightsLogger provides structured logging for dashboard and community search operations.
// Only the searched location is logged, never individual amounts.
type InsightsLogger struct {
	logger *slog.Logger
}

// NewInsightsLogger creates a new insights logger
func NewInsightsLogger(logger *slog.Logger) InsightsLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsLogger{
		logger: logger,
	}
}

// LogSearchStarted logs the start of a community search
func (il *InsightsLogger) LogSearchStarted(ctx context.Context, scope models.LocationScope) {
	il.logger.InfoContext(ctx, "community search started",
		slog.String("event_type", "community_search_started"),
		slog.String("country", scope.Country),
		slog.String("search_level", scope.Level()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogSearchCompleted logs a finished community search and whether it had enough data
func (il *InsightsLogger) LogSearchCompleted(ctx context.Context, scope models.LocationScope, status models.InsightsStatus, durationMs int64) {
	il.logger.InfoContext(ctx, "community search completed",
		slog.String("event_type", "community_search_completed"),
		slog.String("search_label", scope.Label()),
		slog.String("search_level", scope.Level()),
		slog.String("status", string(status)),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogSearchFailed logs a community search that failed in the aggregate queries
func (il *InsightsLogger) LogSearchFailed(ctx context.Context, scope models.LocationScope, errorMsg string, durationMs int64) {
	il.logger.WarnContext(ctx, "community search failed",
		slog.String("event_type", "community_search_failed"),
		slog.String("search_label", scope.Label()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (il *InsightsLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	il.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogDashboardComputed logs a personal dashboard computation
func (il *InsightsLogger) LogDashboardComputed(ctx context.Context, userID uuid.UUID, transactionCount int64, durationMs int64) {
	il.logger.DebugContext(ctx, "dashboard computed",
		slog.String("event_type", "dashboard_computed"),
		slog.String("user_id", userID.String()),
		slog.Int64("transaction_count", transactionCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
