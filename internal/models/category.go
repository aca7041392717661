package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed expense categories
type Category string

const (
	CategoryGroceries      Category = "groceries"
	CategoryRent           Category = "rent"
	CategoryFuel           Category = "fuel"
	CategoryUtilities      Category = "utilities"
	CategoryTransport      Category = "transport"
	CategoryInternetMobile Category = "internet_mobile"
)

// CategoryConfig holds the static presentation and weighting data of a category
type CategoryConfig struct {
	Category Category        `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Weight   decimal.Decimal `json:"weight"`
}

var categoryConfigs = []CategoryConfig{
	{Category: CategoryGroceries, Label: "Groceries", Color: "hsl(142, 71%, 45%)", Weight: decimal.RequireFromString("0.30")},
	{Category: CategoryRent, Label: "Rent", Color: "hsl(262, 83%, 58%)", Weight: decimal.RequireFromString("0.35")},
	{Category: CategoryFuel, Label: "Fuel", Color: "hsl(25, 95%, 53%)", Weight: decimal.RequireFromString("0.075")},
	{Category: CategoryUtilities, Label: "Utilities", Color: "hsl(45, 93%, 47%)", Weight: decimal.RequireFromString("0.10")},
	{Category: CategoryTransport, Label: "Transport", Color: "hsl(199, 89%, 48%)", Weight: decimal.RequireFromString("0.075")},
	{Category: CategoryInternetMobile, Label: "Internet/Mobile", Color: "hsl(330, 81%, 60%)", Weight: decimal.RequireFromString("0.10")},
}

// AllCategories returns every category in enumeration order
func AllCategories() []Category {
	categories := make([]Category, len(categoryConfigs))
	for i, cfg := range categoryConfigs {
		categories[i] = cfg.Category
	}
	return categories
}

// CategoryConfigs returns a copy of the category table in enumeration order
func CategoryConfigs() []CategoryConfig {
	configs := make([]CategoryConfig, len(categoryConfigs))
	copy(configs, categoryConfigs)
	return configs
}

// GetCategoryConfig looks up the configuration of a category
func GetCategoryConfig(category Category) (CategoryConfig, bool) {
	for _, cfg := range categoryConfigs {
		if cfg.Category == category {
			return cfg, true
		}
	}
	return CategoryConfig{}, false
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	_, ok := GetCategoryConfig(Category(category))
	return ok
}

// CategoryOrder returns the enumeration index of a category, or len(AllCategories()) if unknown
func CategoryOrder(category Category) int {
	for i, cfg := range categoryConfigs {
		if cfg.Category == category {
			return i
		}
	}
	return len(categoryConfigs)
}

// Label returns the display label, falling back to the raw value
func (c Category) Label() string {
	if cfg, ok := GetCategoryConfig(c); ok {
		return cfg.Label
	}
	return string(c)
}

// Weight returns the composite index weight, zero for unknown categories
func (c Category) Weight() decimal.Decimal {
	if cfg, ok := GetCategoryConfig(c); ok {
		return cfg.Weight
	}
	return decimal.Zero
}

// ValidateCategoryWeights checks that the index weights add up to exactly one
func ValidateCategoryWeights() error {
	return validateWeights(categoryConfigs)
}

func validateWeights(configs []CategoryConfig) error {
	if len(configs) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, cfg := range configs {
		if cfg.Weight.IsNegative() {
			return fmt.Errorf("category %s has negative weight %s", cfg.Category, cfg.Weight)
		}
		sum = sum.Add(cfg.Weight)
	}

	if !sum.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("category weights sum to %s, expected 1", sum)
	}
	return nil
}
