package dto

import (
	"expense-insights/internal/models"
)

// InsightsSearchRequest is the location filter of a community search.
// It binds from the query string on GET and from the JSON body on POST.
type InsightsSearchRequest struct {
	Country string `json:"country" query:"country" validate:"location_part"`
	State   string `json:"state" query:"state" validate:"location_part"`
	City    string `json:"city" query:"city" validate:"location_part"`
}

// Scope returns the normalized location scope of the request
func (r InsightsSearchRequest) Scope() models.LocationScope {
	return models.LocationScope{Country: r.Country, State: r.State, City: r.City}.Normalize()
}

// CategoryBreakdownResponse is one row of the latest-month category table
type CategoryBreakdownResponse struct {
	Category      models.Category `json:"category"`
	Label         string          `json:"label"`
	Color         string          `json:"color"`
	Weight        string          `json:"weight"`
	AverageAmount MoneyResponse   `json:"average_amount"`
	UserCount     int64           `json:"user_count"`
}

// IndexPointResponse is one month of the cost-of-living index
type IndexPointResponse struct {
	Month     string        `json:"month"`
	CostIndex MoneyResponse `json:"cost_index"`
	UserCount int64         `json:"user_count"`
}

// CommunityInsightsResponse represents the result of a community search
type CommunityInsightsResponse struct {
	Scope              models.LocationScope        `json:"scope"`
	SearchLevel        string                      `json:"search_level"`
	SearchLabel        string                      `json:"search_label"`
	CurrencySymbol     string                      `json:"currency_symbol"`
	Status             models.InsightsStatus       `json:"status"`
	Notice             string                      `json:"notice,omitempty"`
	LatestMonth        *string                     `json:"latest_month"`
	LatestIndex        *IndexPointResponse         `json:"latest_index"`
	IndexMonthMismatch bool                        `json:"index_month_mismatch"`
	CategoryBreakdown  []CategoryBreakdownResponse `json:"category_breakdown"`
	HistoricalTrend    []IndexPointResponse        `json:"historical_trend"`
}

// NewCommunityInsightsResponse converts search results into their API form
func NewCommunityInsightsResponse(insights *models.CommunityInsights) *CommunityInsightsResponse {
	if insights == nil {
		return nil
	}

	currency := models.Currency{Symbol: insights.CurrencySymbol}
	resp := &CommunityInsightsResponse{
		Scope:              insights.Scope,
		SearchLevel:        insights.SearchLevel,
		SearchLabel:        insights.SearchLabel,
		CurrencySymbol:     insights.CurrencySymbol,
		Status:             insights.Status,
		Notice:             insights.Notice,
		LatestMonth:        insights.LatestMonth,
		IndexMonthMismatch: insights.IndexMonthMismatch,
		CategoryBreakdown:  make([]CategoryBreakdownResponse, 0, len(insights.CategoryBreakdown)),
		HistoricalTrend:    make([]IndexPointResponse, 0, len(insights.HistoricalTrend)),
	}

	if latest := insights.LatestIndex; latest != nil && latest.CostIndex.Valid {
		resp.LatestIndex = &IndexPointResponse{
			Month:     latest.Month,
			CostIndex: NewMoneyResponse(latest.CostIndex.Decimal, currency),
			UserCount: latest.UserCount,
		}
	}

	for _, item := range insights.CategoryBreakdown {
		resp.CategoryBreakdown = append(resp.CategoryBreakdown, CategoryBreakdownResponse{
			Category:      item.Category,
			Label:         item.Label,
			Color:         item.Color,
			Weight:        item.Weight.String(),
			AverageAmount: NewMoneyResponse(item.AverageAmount, currency),
			UserCount:     item.UserCount,
		})
	}

	for _, item := range insights.HistoricalTrend {
		resp.HistoricalTrend = append(resp.HistoricalTrend, IndexPointResponse{
			Month:     item.Month,
			CostIndex: NewMoneyResponse(item.CostIndex, currency),
			UserCount: item.UserCount,
		})
	}

	return resp
}

// SearchSnapshotResponse is what the user's search control currently shows
type SearchSnapshotResponse struct {
	State  models.SearchState         `json:"state"`
	Token  uint64                     `json:"token"`
	Scope  *models.LocationScope      `json:"scope,omitempty"`
	Result *CommunityInsightsResponse `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

// NewSearchSnapshotResponse converts a session snapshot into its API form
func NewSearchSnapshotResponse(snapshot models.SearchSnapshot) SearchSnapshotResponse {
	return SearchSnapshotResponse{
		State:  snapshot.State,
		Token:  snapshot.Token,
		Scope:  snapshot.Scope,
		Result: NewCommunityInsightsResponse(snapshot.Result),
		Error:  snapshot.Error,
	}
}
