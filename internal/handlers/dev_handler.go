package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"expense-insights/internal/dto"
	apierrors "expense-insights/internal/errors"
	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
	"expense-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	tokens    services.TokenServiceInterface
	users     repositories.UserRepositoryInterface
	locations repositories.LocationRepositoryInterface
	seeder    services.SeedServiceInterface
	now       func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	tokens services.TokenServiceInterface,
	users repositories.UserRepositoryInterface,
	locations repositories.LocationRepositoryInterface,
	seeder services.SeedServiceInterface,
) *DevHandler {
	return &DevHandler{
		tokens:    tokens,
		users:     users,
		locations: locations,
		seeder:    seeder,
		now:       time.Now,
	}
}

// IssueToken signs an access token, creating the user first when needed
//
// Method: POST /api/v1/dev/token
// Environment: Development only
//
// Body: dto.IssueTokenRequest
//   - user_id: existing or new user (optional, a new user is created when empty)
//   - location_id: location to place the user in (optional)
//
// Success Response: 200 OK dto.TokenResponse
// Error Responses:
//   - 400: Invalid body
//   - 404: LOCATION_001 unknown location
//   - 500: SYSTEM_004 signing key not configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	var locationID *uuid.UUID
	if req.LocationID != "" {
		id := uuid.MustParse(req.LocationID)
		if _, err := h.locations.GetByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrLocationNotFound) {
				return SendError(c, apierrors.LocationNotFound)
			}
			return SendSystemError(c, err)
		}
		locationID = &id
	}

	userID := uuid.Nil
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	userID, err := h.ensureUser(c, userID, locationID, strings.TrimSpace(req.Name))
	if err != nil {
		return SendSystemError(c, err)
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(userID)
	if err != nil {
		if errors.Is(err, services.ErrSigningUnavailable) {
			return SendError(c, apierrors.SystemConfigurationError, apierrors.WithDetails("Token signing is not configured"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userID.String(),
	})
}

// ensureUser creates the user when it does not exist yet and moves it to locationID when given
func (h *DevHandler) ensureUser(c echo.Context, userID uuid.UUID, locationID *uuid.UUID, name string) (uuid.UUID, error) {
	ctx := c.Request().Context()

	if userID != uuid.Nil {
		_, err := h.users.GetByID(ctx, userID)
		switch {
		case err == nil:
			if locationID != nil {
				if err := h.users.UpdateLocation(ctx, userID, *locationID); err != nil {
					return uuid.Nil, err
				}
			}
			return userID, nil
		case !errors.Is(err, repositories.ErrUserNotFound):
			return uuid.Nil, err
		}
	}

	user := &models.User{ID: userID, LocationID: locationID}
	if name != "" {
		user.Name = &name
	}
	if err := h.users.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// SeedCommunity fills every location with synthetic users and expense histories
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Body: dto.SeedRequest
//   - users_per_location: default 5, max 100
//   - months: months of history, default 6, max 24
//
// Success Response: 201 Created dto.SeedResponse
// Error Responses:
//   - 400: Invalid body
//   - 404: LOCATION_001 no locations to seed into
//   - 500: Internal server error
func (h *DevHandler) SeedCommunity(c echo.Context) error {
	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.seeder.SeedCommunity(c.Request().Context(), req.Options(h.now()))
	if err != nil {
		if errors.Is(err, services.ErrNoLocations) {
			return SendError(c, apierrors.LocationNotFound, apierrors.WithDetails("Load location seeds before seeding the community"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SeedResponse{
		Message: "community seeded successfully",
		Result:  *result,
	})
}
