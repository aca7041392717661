package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Health    *HealthCheckHandler
	Category  *CategoryHandler
	Location  *LocationHandler
	Dashboard *DashboardHandler
	Insights  *InsightsHandler
	Dev       *DevHandler
}

// RegisterRoutes mounts the API on e. requireAuth guards every user-scoped route;
// the dev routes are only mounted when h.Dev is set.
func RegisterRoutes(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	v1 := e.Group("/api/v1")

	v1.GET("/categories", h.Category.ListCategories)

	locations := v1.Group("/locations")
	locations.GET("/countries", h.Location.ListCountries)
	locations.GET("/states", h.Location.ListStates)
	locations.GET("/cities", h.Location.ListCities)

	v1.GET("/dashboard", h.Dashboard.GetDashboard, requireAuth)

	insights := v1.Group("/insights", requireAuth)
	insights.GET("", h.Insights.GetInsights)
	insights.POST("/search", h.Insights.Search)
	insights.GET("/search", h.Insights.GetCurrent)
	insights.DELETE("/search", h.Insights.Clear)

	if h.Dev != nil {
		dev := v1.Group("/dev")
		dev.POST("/token", h.Dev.IssueToken)
		dev.POST("/seed", h.Dev.SeedCommunity)
	}
}
