package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory    = errors.New("invalid expense category")
	ErrInvalidAmount      = errors.New("expense amount must be positive")
	ErrMissingExpenseDate = errors.New("expense date is required")
	ErrMissingUserID      = errors.New("user ID is required")
)

// Expense is a single categorized expense owned by one user
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date" json:"user_id"`
	Category    Category        `gorm:"type:varchar(32);not null;index" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index:idx_expenses_user_date" json:"expense_date"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	e.ExpenseDate = NormalizeExpenseDate(e.ExpenseDate)
	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	e.ExpenseDate = NormalizeExpenseDate(e.ExpenseDate)
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidCategory(string(e.Category)) {
		return ErrInvalidCategory
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.ExpenseDate.IsZero() {
		return ErrMissingExpenseDate
	}
	return nil
}

// Month returns the calendar month the expense belongs to
func (e *Expense) Month() MonthBucket {
	return MonthOf(e.ExpenseDate)
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// NormalizeExpenseDate strips the time component, keeping the calendar date as UTC midnight
func NormalizeExpenseDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
