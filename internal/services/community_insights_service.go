package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories"

	"golang.org/x/sync/errgroup"
)

var (
	ErrAggregateQueryFailed  = errors.New("failed to fetch community aggregates")
	ErrAggregatesUnavailable = errors.New("community aggregates are temporarily unavailable")
)

const (
	// HistoricalTrendLimit caps the number of months in the historical index table
	HistoricalTrendLimit = 6

	aggregateServiceName = "community_aggregates"
)

type communityInsightsService struct {
	aggregates   repositories.CommunityAggregateRepositoryInterface
	currency     CurrencyServiceInterface
	breaker      CircuitBreakerInterface
	logger       InsightsLoggerInterface
	metrics      MetricsRecorderInterface
	queryTimeout time.Duration
}

// NewCommunityInsightsService creates a new community insights service.
// A non-positive queryTimeout leaves the caller's deadline in charge.
func NewCommunityInsightsService(
	aggregates repositories.CommunityAggregateRepositoryInterface,
	currency CurrencyServiceInterface,
	breaker CircuitBreakerInterface,
	logger InsightsLoggerInterface,
	metrics MetricsRecorderInterface,
	queryTimeout time.Duration,
) CommunityInsightsServiceInterface {
	return &communityInsightsService{
		aggregates:   aggregates,
		currency:     currency,
		breaker:      breaker,
		logger:       logger,
		metrics:      metrics,
		queryTimeout: queryTimeout,
	}
}

// Search runs one community search. Both aggregates must arrive before anything is
// returned; the first failure cancels the other query and fails the whole search.
func (s *communityInsightsService) Search(ctx context.Context, scope models.LocationScope) (*models.CommunityInsights, error) {
	scope = scope.Normalize()
	if err := scope.Validate(); err != nil {
		s.metrics.IncrementCounter("community_search", map[string]string{"status": "rejected"})
		return nil, err
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("community_search", map[string]string{"status": "unavailable"})
		return nil, ErrAggregatesUnavailable
	}

	start := time.Now()
	s.logger.LogSearchStarted(ctx, scope)

	queryCtx := ctx
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	var (
		averages []models.CategoryAverageRow
		index    []models.CostOfLivingIndexRow
		symbol   string
	)

	g, gctx := errgroup.WithContext(queryCtx)
	g.Go(func() error {
		rows, err := s.aggregates.GetCategoryAverages(gctx, scope)
		if err != nil {
			return err
		}
		averages = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.aggregates.GetCostOfLivingIndex(gctx, scope)
		if err != nil {
			return err
		}
		index = rows
		return nil
	})
	g.Go(func() error {
		symbol = s.currency.ResolveSymbol(gctx, scope.Country)
		return nil
	})

	if err := g.Wait(); err != nil {
		duration := time.Since(start)

		// A cancelled caller means the search was abandoned, not that the database failed
		if ctx.Err() != nil {
			s.metrics.IncrementCounter("community_search", map[string]string{"status": "cancelled"})
			return nil, ctx.Err()
		}

		s.recordFailure(ctx)
		s.metrics.IncrementCounter("community_search", map[string]string{"status": "failed"})
		s.metrics.RecordProcessingTime("community_search", duration)
		s.logger.LogSearchFailed(ctx, scope, err.Error(), duration.Milliseconds())
		return nil, fmt.Errorf("%w: %w", ErrAggregateQueryFailed, err)
	}

	s.recordSuccess(ctx)

	insights := BuildCommunityInsights(scope, averages, index, symbol)

	duration := time.Since(start)
	s.metrics.IncrementCounter("community_search", map[string]string{"status": string(insights.Status)})
	s.metrics.RecordProcessingTime("community_search", duration)
	s.logger.LogSearchCompleted(ctx, scope, insights.Status, duration.Milliseconds())

	if insights.IndexMonthMismatch {
		slog.WarnContext(ctx, "latest average month differs from latest index month",
			slog.String("search_label", insights.SearchLabel),
			slog.String("latest_month", derefString(insights.LatestMonth)),
			slog.String("latest_index_month", insights.LatestIndex.Month),
		)
	}

	return insights, nil
}

func (s *communityInsightsService) recordFailure(ctx context.Context) {
	before := s.breaker.GetState()
	s.breaker.RecordFailure()
	s.publishBreakerState(ctx, before)
}

func (s *communityInsightsService) recordSuccess(ctx context.Context) {
	before := s.breaker.GetState()
	s.breaker.RecordSuccess()
	s.publishBreakerState(ctx, before)
}

func (s *communityInsightsService) publishBreakerState(ctx context.Context, before models.CircuitBreakerState) {
	after := s.breaker.GetState()
	if after == before {
		return
	}
	s.logger.LogCircuitBreakerStateChange(ctx, aggregateServiceName, before.String(), after.String())
	s.metrics.RecordGauge("circuit_breaker_state", float64(after), map[string]string{"service": aggregateServiceName})
}

// BuildCommunityInsights shapes raw aggregate rows into the presentation model.
// Averages and index each keep their own latest month.
func BuildCommunityInsights(
	scope models.LocationScope,
	averages []models.CategoryAverageRow,
	index []models.CostOfLivingIndexRow,
	currencySymbol string,
) *models.CommunityInsights {
	scope = scope.Normalize()

	insights := &models.CommunityInsights{
		Scope:             scope,
		SearchLevel:       scope.Level(),
		SearchLabel:       scope.Label(),
		CurrencySymbol:    currencySymbol,
		CategoryBreakdown: []models.CategoryBreakdownItem{},
		HistoricalTrend:   []models.IndexTrendItem{},
	}

	insights.LatestMonth = latestAverageMonth(averages)
	insights.LatestIndex = latestIndexRow(index)
	insights.IndexMonthMismatch = insights.LatestMonth != nil &&
		insights.LatestIndex != nil &&
		*insights.LatestMonth != insights.LatestIndex.Month

	breakdown := buildCategoryBreakdown(averages, insights.LatestMonth)
	hasIndex := insights.LatestIndex != nil && insights.LatestIndex.CostIndex.Valid

	if len(breakdown) == 0 && !hasIndex {
		insights.Status = models.InsightsStatusInsufficient
		insights.Notice = InsufficientDataNotice(insights.SearchLabel)
		return insights
	}

	insights.Status = models.InsightsStatusWithData
	insights.CategoryBreakdown = breakdown
	insights.HistoricalTrend = buildHistoricalTrend(index)

	return insights
}

// InsufficientDataNotice is the message shown when a scope has too little data
func InsufficientDataNotice(label string) string {
	return fmt.Sprintf("Currently, there aren't enough users tracking expenses in %s.", label)
}

func latestAverageMonth(rows []models.CategoryAverageRow) *string {
	var latest *string
	for i := range rows {
		if latest == nil || rows[i].Month > *latest {
			month := rows[i].Month
			latest = &month
		}
	}
	return latest
}

func latestIndexRow(rows []models.CostOfLivingIndexRow) *models.CostOfLivingIndexRow {
	var latest *models.CostOfLivingIndexRow
	for i := range rows {
		if latest == nil || rows[i].Month > latest.Month {
			row := rows[i]
			latest = &row
		}
	}
	return latest
}

func buildCategoryBreakdown(rows []models.CategoryAverageRow, latestMonth *string) []models.CategoryBreakdownItem {
	items := []models.CategoryBreakdownItem{}
	if latestMonth == nil {
		return items
	}

	for _, row := range rows {
		if row.Month != *latestMonth || !row.AvgAmount.Valid {
			continue
		}
		cfg, ok := models.GetCategoryConfig(row.Category)
		if !ok {
			continue
		}
		items = append(items, models.CategoryBreakdownItem{
			Category:      row.Category,
			Label:         cfg.Label,
			Color:         cfg.Color,
			Weight:        cfg.Weight,
			AverageAmount: row.AvgAmount.Decimal,
			UserCount:     row.UserCount,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].AverageAmount.Equal(items[j].AverageAmount) {
			return items[i].AverageAmount.GreaterThan(items[j].AverageAmount)
		}
		return models.CategoryOrder(items[i].Category) < models.CategoryOrder(items[j].Category)
	})

	return items
}

func buildHistoricalTrend(rows []models.CostOfLivingIndexRow) []models.IndexTrendItem {
	items := make([]models.IndexTrendItem, 0, len(rows))
	for _, row := range rows {
		if !row.CostIndex.Valid {
			continue
		}
		items = append(items, models.IndexTrendItem{
			Month:     row.Month,
			CostIndex: row.CostIndex.Decimal,
			UserCount: row.UserCount,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Month > items[j].Month
	})

	if len(items) > HistoricalTrendLimit {
		items = items[:HistoricalTrendLimit]
	}
	return items
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
