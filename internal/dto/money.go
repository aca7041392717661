package dto

import (
	"expense-insights/internal/models"

	"github.com/shopspring/decimal"
)

// MoneyResponse is an amount as a decimal string plus its display form
type MoneyResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// NewMoneyResponse renders amount with two decimals in the given currency
func NewMoneyResponse(amount decimal.Decimal, currency models.Currency) MoneyResponse {
	return MoneyResponse{
		Amount:    amount.StringFixed(2),
		Formatted: currency.FormatAmount(amount),
	}
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
