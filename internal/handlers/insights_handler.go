package handlers

import (
	"context"
	"errors"
	"net/http"

	"expense-insights/internal/dto"
	apierrors "expense-insights/internal/errors"
	"expense-insights/internal/models"
	"expense-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightsHandler serves community cost-of-living searches
type InsightsHandler struct {
	insights services.CommunityInsightsServiceInterface
	sessions services.SearchSessionRegistryInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	insights services.CommunityInsightsServiceInterface,
	sessions services.SearchSessionRegistryInterface,
) *InsightsHandler {
	return &InsightsHandler{
		insights: insights,
		sessions: sessions,
	}
}

// GetInsights runs a one-off community search
//
// Method: GET /api/v1/insights?country=&state=&city=
// Authentication: Required
//
// Success Response: 200 OK dto.CommunityInsightsResponse (status with_data or insufficient_data)
// Error Responses:
//   - 400: VALIDATION_006 country missing, VALIDATION_007 city without state
//   - 502: INSIGHTS_001 aggregate query failed
//   - 503: INSIGHTS_002 aggregates temporarily unavailable
func (h *InsightsHandler) GetInsights(c echo.Context) error {
	var req dto.InsightsSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid search parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.insights.Search(c.Request().Context(), req.Scope())
	if err != nil {
		return sendInsightsError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCommunityInsightsResponse(result))
}

// Search runs a search through the user's search control. A newer search or a reset
// discards this one's result and answers 409.
//
// Method: POST /api/v1/insights/search
// Authentication: Required
// Body: dto.InsightsSearchRequest
//
// Success Response: 200 OK dto.SearchSnapshotResponse
// Error Responses:
//   - 400: VALIDATION_* invalid scope, the control keeps what it showed
//   - 409: INSIGHTS_003 superseded by a newer search
//   - 502: INSIGHTS_001 aggregate query failed, the control now shows the failure
//   - 503: INSIGHTS_002 aggregates temporarily unavailable
func (h *InsightsHandler) Search(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.InsightsSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	snapshot, err := h.sessions.Search(c.Request().Context(), userID, req.Scope())
	if err != nil {
		return sendInsightsError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSearchSnapshotResponse(snapshot))
}

// GetCurrent returns what the user's search control currently shows
//
// Method: GET /api/v1/insights/search
// Authentication: Required
func (h *InsightsHandler) GetCurrent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	return c.JSON(http.StatusOK, dto.NewSearchSnapshotResponse(h.sessions.Snapshot(userID)))
}

// Clear returns the user's search control to idle, discarding any running search
//
// Method: DELETE /api/v1/insights/search
// Authentication: Required
func (h *InsightsHandler) Clear(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	return c.JSON(http.StatusOK, dto.NewSearchSnapshotResponse(h.sessions.Reset(userID)))
}

func sendInsightsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrCountryRequired),
		errors.Is(err, models.ErrStateRequiresCountry),
		errors.Is(err, models.ErrCityRequiresCountry):
		return SendError(c, apierrors.ValidationCountryMissing)
	case errors.Is(err, models.ErrCityRequiresState):
		return SendError(c, apierrors.ValidationStateMissing)
	case errors.Is(err, services.ErrSearchSuperseded):
		return SendError(c, apierrors.InsightsSearchSuperseded)
	case errors.Is(err, services.ErrAggregatesUnavailable):
		return SendError(c, apierrors.InsightsTemporarilyClosed)
	case errors.Is(err, services.ErrAggregateQueryFailed):
		return SendError(c, apierrors.InsightsQueryFailed)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.SystemServiceUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
