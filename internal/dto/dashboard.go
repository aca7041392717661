package dto

import (
	"time"

	"expense-insights/internal/models"

	"github.com/google/uuid"
)

// CategoryTotalResponse is one category row of the dashboard
type CategoryTotalResponse struct {
	Category   models.Category `json:"category"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
	Total      MoneyResponse   `json:"total"`
	Percentage string          `json:"percentage"`
}

// TrendPointResponse is one month of the six month trend
type TrendPointResponse struct {
	Month string        `json:"month"`
	Label string        `json:"label"`
	Total MoneyResponse `json:"total"`
}

// DashboardResponse represents the personal dashboard of the authenticated user
type DashboardResponse struct {
	UserID                uuid.UUID               `json:"user_id"`
	Currency              models.Currency         `json:"currency"`
	AsOf                  time.Time               `json:"as_of"`
	CurrentMonth          string                  `json:"current_month"`
	CurrentTotal          MoneyResponse           `json:"current_total"`
	PriorTotal            MoneyResponse           `json:"prior_total"`
	MonthOverMonthChange  *string                 `json:"month_over_month_change"`
	TransactionCount      int64                   `json:"transaction_count"`
	AveragePerTransaction MoneyResponse           `json:"average_per_transaction"`
	CategoryTotals        []CategoryTotalResponse `json:"category_totals"`
	MonthlyTrend          []TrendPointResponse    `json:"monthly_trend"`
	Insights              []models.Insight        `json:"insights"`
}

// NewDashboardResponse converts a computed dashboard into its API form
func NewDashboardResponse(dashboard *models.Dashboard) DashboardResponse {
	analytics := dashboard.Analytics
	currency := dashboard.Currency

	resp := DashboardResponse{
		UserID:                dashboard.UserID,
		Currency:              currency,
		AsOf:                  analytics.AsOf,
		CurrentMonth:          analytics.CurrentMonth,
		CurrentTotal:          NewMoneyResponse(analytics.CurrentTotal, currency),
		PriorTotal:            NewMoneyResponse(analytics.PriorTotal, currency),
		TransactionCount:      analytics.TransactionCount,
		AveragePerTransaction: NewMoneyResponse(analytics.AveragePerTransaction, currency),
		CategoryTotals:        make([]CategoryTotalResponse, 0, len(analytics.CategoryTotals)),
		MonthlyTrend:          make([]TrendPointResponse, 0, len(analytics.MonthlyTrend)),
		Insights:              analytics.Insights,
	}

	if analytics.MonthOverMonthChange != nil {
		change := analytics.MonthOverMonthChange.StringFixed(2)
		resp.MonthOverMonthChange = &change
	}
	if resp.Insights == nil {
		resp.Insights = []models.Insight{}
	}

	for _, total := range analytics.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, CategoryTotalResponse{
			Category:   total.Category,
			Label:      total.Label,
			Color:      total.Color,
			Total:      NewMoneyResponse(total.Amount, currency),
			Percentage: total.Percentage.StringFixed(2),
		})
	}

	for _, point := range analytics.MonthlyTrend {
		resp.MonthlyTrend = append(resp.MonthlyTrend, TrendPointResponse{
			Month: point.Month,
			Label: point.Label,
			Total: NewMoneyResponse(point.Amount, currency),
		})
	}

	return resp
}
