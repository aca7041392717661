package handlers

import (
	"errors"
	"net/http"
	"time"

	"expense-insights/internal/dto"
	apierrors "expense-insights/internal/errors"
	"expense-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the personal dashboard
type DashboardHandler struct {
	analytics services.PersonalAnalyticsServiceInterface
	now       func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(analytics services.PersonalAnalyticsServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		analytics: analytics,
		now:       time.Now,
	}
}

// GetDashboard returns the authenticated user's spending summary for the current month
//
// Method: GET /api/v1/dashboard
// Authentication: Required
//
// Success Response: 200 OK dto.DashboardResponse
// Error Responses:
//   - 401: AUTH_001 missing user
//   - 502: DASHBOARD_001 expenses could not be loaded
//   - 500: SYSTEM_001 internal error
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dashboard, err := h.analytics.GetDashboard(c.Request().Context(), userID, h.now())
	if err != nil {
		if errors.Is(err, services.ErrExpenseFetchFailed) {
			return SendError(c, apierrors.DashboardExpensesUnavailable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}
