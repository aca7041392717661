package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound      = errors.New("location not found")
	ErrLocationAlreadyExists = errors.New("location already exists")
	ErrNilLocation           = errors.New("location cannot be nil")
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) LocationRepositoryInterface {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	if location == nil {
		return ErrNilLocation
	}
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrLocationAlreadyExists
		}
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location by ID: %w", err)
	}
	return &location, nil
}

// List returns every location ordered by country, state and city
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).Order("country, state, city").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// GetCurrencyByCountry returns the currency of the first location in a country.
// Country matching ignores case.
func (r *LocationRepository) GetCurrencyByCountry(ctx context.Context, country string) (*models.Currency, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, ErrLocationNotFound
	}

	var location models.Location
	err := r.db.WithContext(ctx).
		Where("LOWER(country) = LOWER(?)", country).
		Order("created_at ASC").
		First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get currency for country: %w", err)
	}

	return &models.Currency{Code: location.CurrencyCode, Symbol: location.CurrencySymbol}, nil
}

// ListCountries returns the distinct countries in alphabetical order
func (r *LocationRepository) ListCountries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Distinct().
		Order("country").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// ListStates returns the distinct non-empty states of a country
func (r *LocationRepository) ListStates(ctx context.Context, country string) ([]string, error) {
	var states []string
	err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("LOWER(country) = LOWER(?) AND state <> ''", strings.TrimSpace(country)).
		Distinct().
		Order("state").
		Pluck("state", &states).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

// ListCities returns the distinct non-empty cities of a state
func (r *LocationRepository) ListCities(ctx context.Context, country, state string) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("LOWER(country) = LOWER(?) AND LOWER(state) = LOWER(?) AND city <> ''",
			strings.TrimSpace(country), strings.TrimSpace(state)).
		Distinct().
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}
