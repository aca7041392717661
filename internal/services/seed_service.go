package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
)

var ErrNoLocations = errors.New("no locations to seed users into")

const (
	DefaultSeedUsersPerLocation = 5
	DefaultSeedMonths           = TrendMonths
	maxSeedUsersPerLocation     = 100
	maxSeedMonths               = 24
)

// currencyScales converts generator base amounts into typical local amounts
var currencyScales = map[string]float64{
	"USD": 1,
	"EUR": 0.9,
	"GBP": 0.8,
	"INR": 40,
}

type seedService struct {
	locations repositories.LocationRepositoryInterface
	users     repositories.UserRepositoryInterface
	expenses  repositories.ExpenseRepositoryInterface
	generator ExpenseGeneratorInterface
	metrics   MetricsRecorderInterface
}

// NewSeedService creates the development seeder
func NewSeedService(
	locations repositories.LocationRepositoryInterface,
	users repositories.UserRepositoryInterface,
	expenses repositories.ExpenseRepositoryInterface,
	generator ExpenseGeneratorInterface,
	metrics MetricsRecorderInterface,
) SeedServiceInterface {
	return &seedService{
		locations: locations,
		users:     users,
		expenses:  expenses,
		generator: generator,
		metrics:   metrics,
	}
}

// normalizeSeedOptions fills defaults and clamps the options to sane bounds
func normalizeSeedOptions(o models.SeedOptions) models.SeedOptions {
	if o.UsersPerLocation <= 0 {
		o.UsersPerLocation = DefaultSeedUsersPerLocation
	}
	if o.UsersPerLocation > maxSeedUsersPerLocation {
		o.UsersPerLocation = maxSeedUsersPerLocation
	}
	if o.Months <= 0 {
		o.Months = DefaultSeedMonths
	}
	if o.Months > maxSeedMonths {
		o.Months = maxSeedMonths
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// SeedCommunity creates users with expense histories in every known location
func (s *seedService) SeedCommunity(ctx context.Context, opts models.SeedOptions) (*models.SeedResult, error) {
	opts = normalizeSeedOptions(opts)

	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	result := &models.SeedResult{Locations: len(locations)}

	for i := range locations {
		location := &locations[i]
		scale := currencyScale(location.CurrencyCode)

		for n := 0; n < opts.UsersPerLocation; n++ {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			name := s.generator.FullName()
			household := s.generator.HouseholdSize()
			user := &models.User{
				Name:          &name,
				LocationID:    &location.ID,
				HouseholdSize: &household,
			}
			if err := s.users.Create(ctx, user); err != nil {
				return result, fmt.Errorf("failed to create seed user: %w", err)
			}
			result.Users++

			expenses := s.generator.GenerateHistory(user.ID, opts.Months, opts.Now, scale)
			if err := s.expenses.CreateBatch(ctx, expenses); err != nil {
				return result, fmt.Errorf("failed to create seed expenses: %w", err)
			}
			result.Expenses += len(expenses)
		}
	}

	s.metrics.RecordGauge("seeded_expenses", float64(result.Expenses), nil)
	slog.InfoContext(ctx, "community seeded",
		slog.Int("locations", result.Locations),
		slog.Int("users", result.Users),
		slog.Int("expenses", result.Expenses),
	)

	return result, nil
}

func currencyScale(code string) float64 {
	if scale, ok := currencyScales[strings.ToUpper(code)]; ok {
		return scale
	}
	return 1
}
