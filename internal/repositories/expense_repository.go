package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNilExpense = errors.New("expense cannot be nil")

const expenseBatchSize = 100

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return ErrNilExpense
	}
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// CreateBatch creates multiple expenses in chunks
func (r *ExpenseRepository) CreateBatch(ctx context.Context, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(expenses, expenseBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create expense batch: %w", err)
	}
	return nil
}

// ListByUser retrieves every active expense of a user, oldest first
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expense_date ASC, created_at ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for user: %w", err)
	}
	return expenses, nil
}

// CountByUser counts the active expenses of a user
func (r *ExpenseRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
