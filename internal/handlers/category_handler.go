package handlers

import (
	"net/http"

	"expense-insights/internal/dto"
	"expense-insights/internal/models"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the fixed expense taxonomy
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns every category with its label, color and index weight
//
// Method: GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(models.CategoryConfigs()))
}
