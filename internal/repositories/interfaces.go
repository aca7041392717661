package repositories

import (
	"context"

	"expense-insights/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	CreateBatch(ctx context.Context, expenses []models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLocation(ctx context.Context, userID, locationID uuid.UUID) error
}

// LocationRepositoryInterface defines the contract for location lookups
type LocationRepositoryInterface interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	GetCurrencyByCountry(ctx context.Context, country string) (*models.Currency, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListStates(ctx context.Context, country string) ([]string, error)
	ListCities(ctx context.Context, country, state string) ([]string, error)
}

// CommunityAggregateRepositoryInterface defines the population-level aggregate queries.
// Both queries only count users at or above the configured minimum group size.
type CommunityAggregateRepositoryInterface interface {
	GetCategoryAverages(ctx context.Context, scope models.LocationScope) ([]models.CategoryAverageRow, error)
	GetCostOfLivingIndex(ctx context.Context, scope models.LocationScope) ([]models.CostOfLivingIndexRow, error)
}
