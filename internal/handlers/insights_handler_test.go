package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"expense-insights/internal/dto"
	"expense-insights/internal/models"
	"expense-insights/internal/services"
	"expense-insights/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InsightsHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	insights *service_mocks.MockCommunityInsightsServiceInterface
	sessions *service_mocks.MockSearchSessionRegistryInterface
	handler  *InsightsHandler
	echo     *echo.Echo
	userID   uuid.UUID
}

func (s *InsightsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insights = service_mocks.NewMockCommunityInsightsServiceInterface(s.ctrl)
	s.sessions = service_mocks.NewMockSearchSessionRegistryInterface(s.ctrl)
	s.handler = NewInsightsHandler(s.insights, s.sessions)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *InsightsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInsightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerSuite))
}

func puneInsights() *models.CommunityInsights {
	month := "2026-09"
	return &models.CommunityInsights{
		Scope:          models.LocationScope{Country: "India", State: "Maharashtra", City: "Pune"},
		SearchLevel:    "city",
		SearchLabel:    "Pune, Maharashtra, India",
		CurrencySymbol: "₹",
		Status:         models.InsightsStatusWithData,
		LatestMonth:    &month,
		LatestIndex: &models.CostOfLivingIndexRow{
			Month:     month,
			UserCount: 12,
			CostIndex: decimal.NewNullDecimal(decimal.RequireFromString("18250.4")),
		},
		CategoryBreakdown: []models.CategoryBreakdownItem{
			{
				Category:      models.CategoryRent,
				Label:         "Rent",
				Color:         "#ef4444",
				Weight:        decimal.RequireFromString("0.35"),
				AverageAmount: decimal.RequireFromString("21000"),
				UserCount:     12,
			},
		},
		HistoricalTrend: []models.IndexTrendItem{
			{Month: "2026-08", CostIndex: decimal.RequireFromString("17900"), UserCount: 11},
			{Month: "2026-09", CostIndex: decimal.RequireFromString("18250.4"), UserCount: 12},
		},
	}
}

func (s *InsightsHandlerSuite) TestGetInsights_WithData() {
	scope := models.LocationScope{Country: "India", State: "Maharashtra", City: "Pune"}
	s.insights.EXPECT().Search(gomock.Any(), scope).Return(puneInsights(), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/insights?country=India&state=Maharashtra&city=%20Pune%20", nil, s.userID)
	s.Require().NoError(s.handler.GetInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CommunityInsightsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.InsightsStatusWithData, resp.Status)
	s.Require().NotNil(resp.LatestIndex)
	s.Equal("18250.40", resp.LatestIndex.CostIndex.Amount)
	s.Equal("₹18,250.40", resp.LatestIndex.CostIndex.Formatted)
	s.Require().Len(resp.CategoryBreakdown, 1)
	s.Equal("₹21,000.00", resp.CategoryBreakdown[0].AverageAmount.Formatted)
	s.Len(resp.HistoricalTrend, 2)
}

func (s *InsightsHandlerSuite) TestGetInsights_InsufficientData() {
	scope := models.LocationScope{Country: "India"}
	s.insights.EXPECT().Search(gomock.Any(), scope).Return(&models.CommunityInsights{
		Scope:       scope,
		SearchLevel: "country",
		SearchLabel: "India",
		Status:      models.InsightsStatusInsufficient,
		Notice:      "Not enough data for India yet",
	}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/insights?country=India", nil, s.userID)
	s.Require().NoError(s.handler.GetInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CommunityInsightsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.InsightsStatusInsufficient, resp.Status)
	s.Nil(resp.LatestIndex)
	s.Empty(resp.CategoryBreakdown)
}

func (s *InsightsHandlerSuite) TestGetInsights_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"country missing", models.ErrCountryRequired, http.StatusBadRequest, "VALIDATION_006"},
		{"state without country", models.ErrStateRequiresCountry, http.StatusBadRequest, "VALIDATION_006"},
		{"city without state", models.ErrCityRequiresState, http.StatusBadRequest, "VALIDATION_007"},
		{"query failed", fmt.Errorf("%w: %w", services.ErrAggregateQueryFailed, errors.New("timeout")), http.StatusBadGateway, "INSIGHTS_001"},
		{"breaker open", services.ErrAggregatesUnavailable, http.StatusServiceUnavailable, "INSIGHTS_002"},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, "SYSTEM_003"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.insights.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/insights?country=India", nil, s.userID)
			s.Require().NoError(s.handler.GetInsights(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, decodeErrorCode(rec))
		})
	}
}

func (s *InsightsHandlerSuite) TestGetInsights_RejectsControlCharacters() {
	c, _ := newTestContext(s.echo, http.MethodGet, "/api/v1/insights?country=Ind%00ia", nil, s.userID)
	err := s.handler.GetInsights(c)

	var validationErrs validator.ValidationErrors
	s.Require().True(errors.As(err, &validationErrs))
	s.Equal("country", validationErrs[0].Field())
}

func (s *InsightsHandlerSuite) TestSearch_PublishesSnapshot() {
	scope := models.LocationScope{Country: "India", State: "Maharashtra", City: "Pune"}
	s.sessions.EXPECT().Search(gomock.Any(), s.userID, scope).Return(models.SearchSnapshot{
		State:  models.SearchStateWithData,
		Token:  3,
		Scope:  &scope,
		Result: puneInsights(),
	}, nil)

	body := dto.InsightsSearchRequest{Country: "India", State: "Maharashtra", City: "Pune"}
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/insights/search", body, s.userID)
	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SearchSnapshotResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.SearchStateWithData, resp.State)
	s.Equal(uint64(3), resp.Token)
	s.Require().NotNil(resp.Result)
	s.Equal("Pune, Maharashtra, India", resp.Result.SearchLabel)
}

func (s *InsightsHandlerSuite) TestSearch_Superseded() {
	s.sessions.EXPECT().
		Search(gomock.Any(), s.userID, models.LocationScope{Country: "India"}).
		Return(models.SearchSnapshot{State: models.SearchStateSearching, Token: 4}, services.ErrSearchSuperseded)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/insights/search", dto.InsightsSearchRequest{Country: "India"}, s.userID)
	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("INSIGHTS_003", decodeErrorCode(rec))
}

func (s *InsightsHandlerSuite) TestSearch_EmptyScope() {
	s.sessions.EXPECT().
		Search(gomock.Any(), s.userID, models.LocationScope{}).
		Return(models.SearchSnapshot{State: models.SearchStateIdle}, models.ErrCountryRequired)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/insights/search", dto.InsightsSearchRequest{}, s.userID)
	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeErrorCode(rec))
}

func (s *InsightsHandlerSuite) TestSearch_Unauthenticated() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/insights/search", dto.InsightsSearchRequest{Country: "India"}, uuid.Nil)
	s.Require().NoError(s.handler.Search(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *InsightsHandlerSuite) TestGetCurrent() {
	s.sessions.EXPECT().Snapshot(s.userID).Return(models.SearchSnapshot{
		State: models.SearchStateFailed,
		Token: 2,
		Error: "aggregate query failed",
	})

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/insights/search", nil, s.userID)
	s.Require().NoError(s.handler.GetCurrent(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SearchSnapshotResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.SearchStateFailed, resp.State)
	s.Nil(resp.Result)
	s.Equal("aggregate query failed", resp.Error)
}

func (s *InsightsHandlerSuite) TestClear() {
	s.sessions.EXPECT().Reset(s.userID).Return(models.SearchSnapshot{State: models.SearchStateIdle, Token: 5})

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/insights/search", nil, s.userID)
	s.Require().NoError(s.handler.Clear(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SearchSnapshotResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.SearchStateIdle, resp.State)
	s.Equal(uint64(5), resp.Token)
}
