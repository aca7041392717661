package models

import (
	"github.com/shopspring/decimal"
)

// CategoryAverageRow is a population aggregate of one category in one month.
// AvgAmount is invalid (null) when no qualifying users reported the category.
type CategoryAverageRow struct {
	Category  Category            `json:"category" gorm:"column:category"`
	Month     string              `json:"month" gorm:"column:month"`
	UserCount int64               `json:"user_count" gorm:"column:user_count"`
	AvgAmount decimal.NullDecimal `json:"avg_amount" gorm:"column:avg_amount"`
}

// CostOfLivingIndexRow is the weighted composite index of one month.
// CostIndex is invalid (null) under the same no-data rule as averages.
type CostOfLivingIndexRow struct {
	Month     string              `json:"month" gorm:"column:month"`
	UserCount int64               `json:"user_count" gorm:"column:user_count"`
	CostIndex decimal.NullDecimal `json:"cost_index" gorm:"column:cost_index"`
}

// InsightsStatus is the outcome of a completed community search
type InsightsStatus string

const (
	InsightsStatusWithData     InsightsStatus = "with_data"
	InsightsStatusInsufficient InsightsStatus = "insufficient_data"
)

// CategoryBreakdownItem is one row of the latest-month category table
type CategoryBreakdownItem struct {
	Category      Category        `json:"category"`
	Label         string          `json:"label"`
	Color         string          `json:"color"`
	Weight        decimal.Decimal `json:"weight"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	UserCount     int64           `json:"user_count"`
}

// IndexTrendItem is one row of the historical index table
type IndexTrendItem struct {
	Month     string          `json:"month"`
	CostIndex decimal.Decimal `json:"cost_index"`
	UserCount int64           `json:"user_count"`
}

// CommunityInsights is the presentation-ready result of a community search
type CommunityInsights struct {
	Scope              LocationScope           `json:"scope"`
	SearchLevel        string                  `json:"search_level"`
	SearchLabel        string                  `json:"search_label"`
	CurrencySymbol     string                  `json:"currency_symbol"`
	Status             InsightsStatus          `json:"status"`
	Notice             string                  `json:"notice,omitempty"`
	LatestMonth        *string                 `json:"latest_month,omitempty"`
	LatestIndex        *CostOfLivingIndexRow   `json:"latest_index,omitempty"`
	IndexMonthMismatch bool                    `json:"index_month_mismatch"`
	CategoryBreakdown  []CategoryBreakdownItem `json:"category_breakdown"`
	HistoricalTrend    []IndexTrendItem        `json:"historical_trend"`
}

// HasData reports whether the sufficiency gate passed
func (c *CommunityInsights) HasData() bool {
	return c.Status == InsightsStatusWithData
}

// SearchState is the display state of a community search control
type SearchState string

const (
	SearchStateIdle         SearchState = "idle"
	SearchStateSearching    SearchState = "searching"
	SearchStateWithData     SearchState = "with_data"
	SearchStateInsufficient SearchState = "insufficient_data"
	SearchStateFailed       SearchState = "failed"
)

// SearchSnapshot is what a search control currently displays
type SearchSnapshot struct {
	State  SearchState        `json:"state"`
	Token  uint64             `json:"token"`
	Scope  *LocationScope     `json:"scope,omitempty"`
	Result *CommunityInsights `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}
