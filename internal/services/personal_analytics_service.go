package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrExpenseFetchFailed = errors.New("failed to fetch expenses")

const (
	// TrendMonths is the length of the monthly trend series, current month included
	TrendMonths = 6

	changeInsightThreshold   = 10
	dominantCategoryShareMin = 40
)

var hundred = decimal.NewFromInt(100)

type personalAnalyticsService struct {
	expenses repositories.ExpenseRepositoryInterface
	users    repositories.UserRepositoryInterface
	currency CurrencyServiceInterface
	logger   InsightsLoggerInterface
	metrics  MetricsRecorderInterface
}

// NewPersonalAnalyticsService creates a new personal analytics service
func NewPersonalAnalyticsService(
	expenses repositories.ExpenseRepositoryInterface,
	users repositories.UserRepositoryInterface,
	currency CurrencyServiceInterface,
	logger InsightsLoggerInterface,
	metrics MetricsRecorderInterface,
) PersonalAnalyticsServiceInterface {
	return &personalAnalyticsService{
		expenses: expenses,
		users:    users,
		currency: currency,
		logger:   logger,
		metrics:  metrics,
	}
}

// GetDashboard loads every expense of the user and summarizes them relative to now.
// A missing or unreadable profile only costs the user their local currency.
func (s *personalAnalyticsService) GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error) {
	start := time.Now()

	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		s.metrics.IncrementCounter("dashboard_request", map[string]string{"status": "failed"})
		slog.ErrorContext(ctx, "failed to fetch expenses for dashboard",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrExpenseFetchFailed, err)
	}

	currency := s.currency.Default()
	user, err := s.users.GetByID(ctx, userID)
	switch {
	case err == nil:
		currency = s.currency.ResolveForUser(user)
	case errors.Is(err, repositories.ErrUserNotFound):
	default:
		slog.WarnContext(ctx, "failed to load user profile, using default currency",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	analytics := CalculatePersonalAnalytics(expenses, now)

	duration := time.Since(start)
	s.metrics.IncrementCounter("dashboard_request", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("dashboard", duration)
	s.logger.LogDashboardComputed(ctx, userID, analytics.TransactionCount, duration.Milliseconds())

	return &models.Dashboard{
		UserID:    userID,
		Currency:  currency,
		Analytics: analytics,
	}, nil
}

// CalculatePersonalAnalytics summarizes a user's expenses relative to now.
// Records dated after now's calendar month belong to no bucket and are ignored.
func CalculatePersonalAnalytics(expenses []models.Expense, now time.Time) *models.PersonalAnalytics {
	current := models.MonthOf(now)
	prior := current.AddMonths(-1)

	monthTotals := make(map[models.MonthBucket]decimal.Decimal)
	categoryAmounts := make(map[models.Category]decimal.Decimal)
	var transactionCount int64

	for _, expense := range expenses {
		bucket := expense.Month()
		if current.Before(bucket) {
			continue
		}

		monthTotals[bucket] = amountOr(monthTotals, bucket).Add(expense.Amount)
		if bucket == current {
			transactionCount++
			categoryAmounts[expense.Category] = amountOr(categoryAmounts, expense.Category).Add(expense.Amount)
		}
	}

	currentTotal := amountOr(monthTotals, current)
	priorTotal := amountOr(monthTotals, prior)

	analytics := &models.PersonalAnalytics{
		AsOf:                  now,
		CurrentMonth:          current.Key(),
		CurrentTotal:          currentTotal,
		PriorTotal:            priorTotal,
		TransactionCount:      transactionCount,
		AveragePerTransaction: decimal.Zero,
		CategoryTotals:        buildCategoryTotals(categoryAmounts, currentTotal),
		MonthlyTrend:          buildMonthlyTrend(monthTotals, current),
	}

	if transactionCount > 0 {
		analytics.AveragePerTransaction = currentTotal.Div(decimal.NewFromInt(transactionCount)).Round(2)
	}

	var change *decimal.Decimal
	if priorTotal.IsPositive() {
		c := currentTotal.Sub(priorTotal).Div(priorTotal).Mul(hundred)
		change = &c
		rounded := c.Round(2)
		analytics.MonthOverMonthChange = &rounded
	}

	analytics.Insights = buildInsights(change, categoryAmounts, currentTotal)

	return analytics
}

func amountOr[K comparable](amounts map[K]decimal.Decimal, key K) decimal.Decimal {
	if amount, ok := amounts[key]; ok {
		return amount
	}
	return decimal.Zero
}

// percentOf returns part as a percentage of total, zero when total is zero
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

func buildCategoryTotals(amounts map[models.Category]decimal.Decimal, total decimal.Decimal) []models.CategoryTotal {
	configs := models.CategoryConfigs()
	totals := make([]models.CategoryTotal, 0, len(configs))

	for _, cfg := range configs {
		amount := amountOr(amounts, cfg.Category)
		totals = append(totals, models.CategoryTotal{
			Category:   cfg.Category,
			Label:      cfg.Label,
			Color:      cfg.Color,
			Amount:     amount,
			Percentage: percentOf(amount, total).Round(2),
		})
	}

	return totals
}

func buildMonthlyTrend(monthTotals map[models.MonthBucket]decimal.Decimal, current models.MonthBucket) []models.TrendPoint {
	trend := make([]models.TrendPoint, 0, TrendMonths)
	for offset := TrendMonths - 1; offset >= 0; offset-- {
		bucket := current.AddMonths(-offset)
		trend = append(trend, models.TrendPoint{
			Month:  bucket.Key(),
			Label:  bucket.Label(),
			Amount: amountOr(monthTotals, bucket),
		})
	}
	return trend
}

func buildInsights(change *decimal.Decimal, amounts map[models.Category]decimal.Decimal, total decimal.Decimal) []models.Insight {
	insights := make([]models.Insight, 0, 2)
	threshold := decimal.NewFromInt(changeInsightThreshold)

	if change != nil {
		switch {
		case change.GreaterThan(threshold):
			insights = append(insights, models.Insight{
				Type:    models.InsightNegative,
				Message: fmt.Sprintf("Your spending increased %s%% compared to last month", change.StringFixed(0)),
				Detail:  "Consider reviewing your expenses for potential savings",
			})
		case change.LessThan(threshold.Neg()):
			insights = append(insights, models.Insight{
				Type:    models.InsightPositive,
				Message: fmt.Sprintf("Great job! Your spending decreased %s%% compared to last month", change.Abs().StringFixed(0)),
			})
		}
	}

	if top, ok := topCategory(amounts); ok {
		share := percentOf(amountOr(amounts, top.Category), total)
		if share.GreaterThan(decimal.NewFromInt(dominantCategoryShareMin)) {
			category := top.Category
			insights = append(insights, models.Insight{
				Type:     models.InsightNeutral,
				Message:  fmt.Sprintf("%s accounts for %s%% of your spending", top.Label, share.StringFixed(0)),
				Detail:   "This is your highest expense category this month",
				Category: &category,
			})
		}
	}

	return insights
}

// topCategory returns the category with the largest positive amount.
// Ties go to the category listed first.
func topCategory(amounts map[models.Category]decimal.Decimal) (models.CategoryConfig, bool) {
	var (
		top   models.CategoryConfig
		best  = decimal.Zero
		found bool
	)

	for _, cfg := range models.CategoryConfigs() {
		amount := amountOr(amounts, cfg.Category)
		if amount.GreaterThan(best) {
			top, best, found = cfg, amount, true
		}
	}

	return top, found
}
