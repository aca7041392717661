package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-insights/internal/config"
	"expense-insights/internal/errors"
	"expense-insights/internal/handlers"
	"expense-insights/internal/models"
	"expense-insights/internal/services"
	"expense-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	mockTokens   *service_mocks.MockTokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService()
	s.mockTokens = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService() services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	})
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// SendError writes the response and returns nil
	s.Require().NoError(mw(next)(c))
	return rec
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, func(c echo.Context) error {
		s.Equal(userID, c.Get(handlers.UserIDContextKey))
		return okHandler(c)
	})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(RequireAuth(s.tokenService), "", okHandler)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.serve(RequireAuth(s.tokenService), "InvalidToken", okHandler)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.serve(RequireAuth(s.tokenService), "Bearer invalid.jwt.token", okHandler)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	s.mockTokens.EXPECT().ExtractTokenFromHeader("Bearer stale").Return("stale", nil)
	s.mockTokens.EXPECT().ValidateAccessToken("stale").Return(nil, fmt.Errorf("%w: exp passed", services.ErrExpiredToken))

	rec := s.serve(RequireAuth(s.mockTokens), "Bearer stale", okHandler)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_NilUserID() {
	s.mockTokens.EXPECT().ExtractTokenFromHeader("Bearer anon").Return("anon", nil)
	s.mockTokens.EXPECT().ValidateAccessToken("anon").Return(&models.CustomClaims{UserID: uuid.Nil.String()}, nil)

	rec := s.serve(RequireAuth(s.mockTokens), "Bearer anon", func(c echo.Context) error {
		s.Fail("next handler must not run")
		return nil
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Invalid user ID in token")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	token, _, err := s.createTokenService().GenerateAccessToken(uuid.New())
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, okHandler)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
