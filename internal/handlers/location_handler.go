package handlers

import (
	"errors"
	"net/http"

	"expense-insights/internal/dto"
	apierrors "expense-insights/internal/errors"
	"expense-insights/internal/models"
	"expense-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// LocationHandler serves the cascading country, state and city pickers
type LocationHandler struct {
	locations services.LocationServiceInterface
}

func NewLocationHandler(locations services.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// ListCountries returns every country with at least one location
//
// Method: GET /api/v1/locations/countries
func (h *LocationHandler) ListCountries(c echo.Context) error {
	countries, err := h.locations.ListCountries(c.Request().Context())
	if err != nil {
		return sendLocationError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OptionsResponse{Options: countries})
}

// ListStates returns the states of a country
//
// Method: GET /api/v1/locations/states?country=
func (h *LocationHandler) ListStates(c echo.Context) error {
	states, err := h.locations.ListStates(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return sendLocationError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OptionsResponse{Options: states})
}

// ListCities returns the cities of a state
//
// Method: GET /api/v1/locations/cities?country=&state=
func (h *LocationHandler) ListCities(c echo.Context) error {
	cities, err := h.locations.ListCities(c.Request().Context(), c.QueryParam("country"), c.QueryParam("state"))
	if err != nil {
		return sendLocationError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OptionsResponse{Options: cities})
}

func sendLocationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrCountryRequired):
		return SendError(c, apierrors.ValidationCountryMissing)
	case errors.Is(err, services.ErrStateRequired):
		return SendError(c, apierrors.ValidationStateMissing)
	case errors.Is(err, services.ErrLocationLookupFailed):
		return SendError(c, apierrors.LocationUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
