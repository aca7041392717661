package dto

import "expense-insights/internal/models"

// OptionsResponse is one level of the cascading location pickers
type OptionsResponse struct {
	Options []string `json:"options"`
}

// CategoryResponse describes one expense category and its index weight
type CategoryResponse struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Weight   string          `json:"weight"`
}

// CategoryListResponse lists every category in display order
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// NewCategoryListResponse renders the category table
func NewCategoryListResponse(configs []models.CategoryConfig) CategoryListResponse {
	categories := make([]CategoryResponse, 0, len(configs))
	for _, cfg := range configs {
		categories = append(categories, CategoryResponse{
			Category: cfg.Category,
			Label:    cfg.Label,
			Color:    cfg.Color,
			Weight:   cfg.Weight.String(),
		})
	}
	return CategoryListResponse{Categories: categories}
}
