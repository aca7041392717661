package services

import (
	"context"
	"time"

	"expense-insights/internal/models"

	"github.com/google/uuid"
)

// PersonalAnalyticsServiceInterface builds the personal dashboard of a user
type PersonalAnalyticsServiceInterface interface {
	// GetDashboard loads the user's expenses and summarizes them relative to now
	GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error)
}

// CommunityInsightsServiceInterface answers community cost-of-living searches
type CommunityInsightsServiceInterface interface {
	// Search validates the scope, fetches both aggregates and shapes them for display
	Search(ctx context.Context, scope models.LocationScope) (*models.CommunityInsights, error)
}

// SearchSessionRegistryInterface drives the single search control of each user
type SearchSessionRegistryInterface interface {
	Search(ctx context.Context, userID uuid.UUID, scope models.LocationScope) (models.SearchSnapshot, error)
	Snapshot(userID uuid.UUID) models.SearchSnapshot
	Reset(userID uuid.UUID) models.SearchSnapshot
	Remove(userID uuid.UUID)
	Len() int
}

// CurrencyServiceInterface resolves display currencies. It never fails: misses fall back to the default.
type CurrencyServiceInterface interface {
	Default() models.Currency
	ResolveForCountry(ctx context.Context, country string) models.Currency
	ResolveSymbol(ctx context.Context, country string) string
	ResolveForUser(user *models.User) models.Currency
}

// LocationServiceInterface provides the cascading location option lists
type LocationServiceInterface interface {
	ListCountries(ctx context.Context) ([]string, error)
	ListStates(ctx context.Context, country string) ([]string, error)
	ListCities(ctx context.Context, country, state string) ([]string, error)
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// InsightsLoggerInterface provides structured logging for insights operations
type InsightsLoggerInterface interface {
	LogSearchStarted(ctx context.Context, scope models.LocationScope)
	LogSearchCompleted(ctx context.Context, scope models.LocationScope, status models.InsightsStatus, durationMs int64)
	LogSearchFailed(ctx context.Context, scope models.LocationScope, errorMsg string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogDashboardComputed(ctx context.Context, userID uuid.UUID, transactionCount int64, durationMs int64)
}

// ExpenseGeneratorInterface generates realistic expense data for development seeding
type ExpenseGeneratorInterface interface {
	GenerateMonth(userID uuid.UUID, month models.MonthBucket, until time.Time, scale float64) []models.Expense
	GenerateHistory(userID uuid.UUID, months int, now time.Time, scale float64) []models.Expense
	HouseholdSize() int
	FullName() string
}

// SeedServiceInterface fills the database with a synthetic community
type SeedServiceInterface interface {
	SeedCommunity(ctx context.Context, opts models.SeedOptions) (*models.SeedResult, error)
}
