package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpense_Validate(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name:    "valid expense",
			expense: Expense{UserID: userID, Category: CategoryRent, Amount: decimal.NewFromInt(1000), ExpenseDate: date},
		},
		{
			name:    "missing user",
			expense: Expense{Category: CategoryRent, Amount: decimal.NewFromInt(1000), ExpenseDate: date},
			wantErr: ErrMissingUserID,
		},
		{
			name:    "unknown category",
			expense: Expense{UserID: userID, Category: Category("other"), Amount: decimal.NewFromInt(10), ExpenseDate: date},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "zero amount",
			expense: Expense{UserID: userID, Category: CategoryFuel, Amount: decimal.Zero, ExpenseDate: date},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			expense: Expense{UserID: userID, Category: CategoryFuel, Amount: decimal.NewFromInt(-5), ExpenseDate: date},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing date",
			expense: Expense{UserID: userID, Category: CategoryFuel, Amount: decimal.NewFromInt(5)},
			wantErr: ErrMissingExpenseDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeExpenseDate(t *testing.T) {
	local := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	normalized := NormalizeExpenseDate(local)

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), normalized)
	assert.True(t, NormalizeExpenseDate(time.Time{}).IsZero())
}

func TestExpense_Month(t *testing.T) {
	e := Expense{ExpenseDate: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-02", e.Month().Key())
}
