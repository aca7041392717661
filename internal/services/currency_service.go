package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
)

type currencyService struct {
	locations repositories.LocationRepositoryInterface
	fallback  models.Currency
}

// NewCurrencyService creates a currency resolver that falls back to the given default
func NewCurrencyService(locations repositories.LocationRepositoryInterface, fallback models.Currency) CurrencyServiceInterface {
	return &currencyService{
		locations: locations,
		fallback:  fallback,
	}
}

func (s *currencyService) Default() models.Currency {
	return s.fallback
}

// ResolveForCountry looks up the currency of a country. Lookup failures are logged and
// answered with the default; display formatting must never block the data behind it.
func (s *currencyService) ResolveForCountry(ctx context.Context, country string) models.Currency {
	country = strings.TrimSpace(country)
	if country == "" {
		return s.fallback
	}

	currency, err := s.locations.GetCurrencyByCountry(ctx, country)
	if err != nil {
		if !errors.Is(err, repositories.ErrLocationNotFound) {
			slog.WarnContext(ctx, "currency lookup failed, using default",
				slog.String("country", country),
				slog.String("error", err.Error()),
			)
		}
		return s.fallback
	}

	if currency == nil || currency.Symbol == "" {
		return s.fallback
	}
	return *currency
}

func (s *currencyService) ResolveSymbol(ctx context.Context, country string) string {
	return s.ResolveForCountry(ctx, country).Symbol
}

// ResolveForUser returns the currency of the user's location, or the default
func (s *currencyService) ResolveForUser(user *models.User) models.Currency {
	if user == nil || user.Location == nil || user.Location.CurrencySymbol == "" {
		return s.fallback
	}
	return models.Currency{
		Code:   user.Location.CurrencyCode,
		Symbol: user.Location.CurrencySymbol,
	}
}
