package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsightType classifies a dashboard insight
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightNegative InsightType = "negative"
	InsightNeutral  InsightType = "neutral"
)

// Insight is a qualitative signal derived from a user's spending
type Insight struct {
	Type     InsightType `json:"type"`
	Message  string      `json:"message"`
	Detail   string      `json:"detail,omitempty"`
	Category *Category   `json:"category,omitempty"`
}

// CategoryTotal is the current-month spend of one category
type CategoryTotal struct {
	Category   Category        `json:"category"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TrendPoint is the total spend of one month in the trend series
type TrendPoint struct {
	Month  string          `json:"month"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonalAnalytics summarizes one user's spending relative to a reference instant
type PersonalAnalytics struct {
	AsOf                  time.Time        `json:"as_of"`
	CurrentMonth          string           `json:"current_month"`
	CurrentTotal          decimal.Decimal  `json:"current_total"`
	PriorTotal            decimal.Decimal  `json:"prior_total"`
	MonthOverMonthChange  *decimal.Decimal `json:"month_over_month_change,omitempty"`
	TransactionCount      int64            `json:"transaction_count"`
	AveragePerTransaction decimal.Decimal  `json:"average_per_transaction"`
	CategoryTotals        []CategoryTotal  `json:"category_totals"`
	MonthlyTrend          []TrendPoint     `json:"monthly_trend"`
	Insights              []Insight        `json:"insights"`
}

// HasTrend reports whether a month-over-month change could be computed
func (p *PersonalAnalytics) HasTrend() bool {
	return p.MonthOverMonthChange != nil
}

// Dashboard is the personal analytics of a user together with their display currency
type Dashboard struct {
	UserID    uuid.UUID          `json:"user_id"`
	Currency  Currency           `json:"currency"`
	Analytics *PersonalAnalytics `json:"analytics"`
}
