package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
)

var (
	ErrStateRequired        = errors.New("state is required")
	ErrLocationLookupFailed = errors.New("failed to load locations")
)

type locationService struct {
	locations repositories.LocationRepositoryInterface
}

// NewLocationService creates a new location service
func NewLocationService(locations repositories.LocationRepositoryInterface) LocationServiceInterface {
	return &locationService{locations: locations}
}

func (s *locationService) ListCountries(ctx context.Context) ([]string, error) {
	countries, err := s.locations.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocationLookupFailed, err)
	}
	return nonNil(countries), nil
}

// ListStates returns the states of a country; the country is required
func (s *locationService) ListStates(ctx context.Context, country string) ([]string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, models.ErrCountryRequired
	}

	states, err := s.locations.ListStates(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocationLookupFailed, err)
	}
	return nonNil(states), nil
}

// ListCities returns the cities of a state; country and state are required
func (s *locationService) ListCities(ctx context.Context, country, state string) ([]string, error) {
	country = strings.TrimSpace(country)
	state = strings.TrimSpace(state)
	if country == "" {
		return nil, models.ErrCountryRequired
	}
	if state == "" {
		return nil, ErrStateRequired
	}

	cities, err := s.locations.ListCities(ctx, country, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocationLookupFailed, err)
	}
	return nonNil(cities), nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
