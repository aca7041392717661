package dto

import (
	"time"

	"expense-insights/internal/models"
)

// IssueTokenRequest asks for a development access token.
// Without user_id a new user is created; location_id moves the user to that location.
type IssueTokenRequest struct {
	UserID     string `json:"user_id" validate:"omitempty,uuid"`
	LocationID string `json:"location_id" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"omitempty,max=255"`
}

// TokenResponse carries a signed access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}

// SeedRequest configures the synthetic community
type SeedRequest struct {
	UsersPerLocation int `json:"users_per_location" validate:"omitempty,min=1,max=100"`
	Months           int `json:"months" validate:"omitempty,min=1,max=24"`
}

// Options converts the request to seeding options
func (r SeedRequest) Options(now time.Time) models.SeedOptions {
	return models.SeedOptions{
		UsersPerLocation: r.UsersPerLocation,
		Months:           r.Months,
		Now:              now,
	}
}

// SeedResponse reports what the seeder created
type SeedResponse struct {
	Message string            `json:"message"`
	Result  models.SeedResult `json:"result"`
}
