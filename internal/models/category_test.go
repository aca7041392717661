package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCategories_EnumerationOrder(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryGroceries,
		CategoryRent,
		CategoryFuel,
		CategoryUtilities,
		CategoryTransport,
		CategoryInternetMobile,
	}, AllCategories())
}

func TestValidateCategoryWeights(t *testing.T) {
	require.NoError(t, ValidateCategoryWeights())

	sum := decimal.Zero
	for _, cfg := range CategoryConfigs() {
		sum = sum.Add(cfg.Weight)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "weights sum to %s", sum)
}

func TestValidateWeights_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		configs []CategoryConfig
		errMsg  string
	}{
		{
			name: "sum below one",
			configs: []CategoryConfig{
				{Category: CategoryRent, Weight: decimal.RequireFromString("0.5")},
				{Category: CategoryFuel, Weight: decimal.RequireFromString("0.4")},
			},
			errMsg: "sum to 0.9",
		},
		{
			name: "negative weight",
			configs: []CategoryConfig{
				{Category: CategoryRent, Weight: decimal.RequireFromString("1.5")},
				{Category: CategoryFuel, Weight: decimal.RequireFromString("-0.5")},
			},
			errMsg: "negative weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWeights(tt.configs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, validateWeights(nil))
}

func TestCategoryConfigs_ReturnsCopy(t *testing.T) {
	configs := CategoryConfigs()
	configs[0].Label = "changed"

	cfg, ok := GetCategoryConfig(CategoryGroceries)
	require.True(t, ok)
	assert.Equal(t, "Groceries", cfg.Label)
}

func TestCategory_LabelAndWeight(t *testing.T) {
	assert.Equal(t, "Internet/Mobile", CategoryInternetMobile.Label())
	assert.True(t, CategoryRent.Weight().Equal(decimal.RequireFromString("0.35")))
	assert.Equal(t, "other", Category("other").Label())
	assert.True(t, Category("other").Weight().IsZero())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("groceries"))
	assert.True(t, IsValidCategory("internet_mobile"))
	assert.False(t, IsValidCategory("GROCERIES"))
	assert.False(t, IsValidCategory("other"))
	assert.False(t, IsValidCategory(""))
}

func TestCategoryOrder(t *testing.T) {
	assert.Equal(t, 0, CategoryOrder(CategoryGroceries))
	assert.Equal(t, 5, CategoryOrder(CategoryInternetMobile))
	assert.Equal(t, 6, CategoryOrder(Category("unknown")))
}
