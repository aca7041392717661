package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(ValidationCountryMissing, s.traceID)

	s.Equal("VALIDATION_006", response.Error.Code)
	s.Equal("Please enter a country to search", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(InsightsQueryFailed, "",
		WithDetails("aggregate query timed out"),
		WithMessage("Could not load community data"),
		WithTraceID(s.traceID),
	)

	s.Equal("INSIGHTS_001", response.Error.Code)
	s.Equal("Could not load community data", response.Error.Message)
	s.Equal([]string{"aggregate query timed out"}, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("first"), WithDetails("second", "third"))

	s.Equal([]string{"second", "third"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{"country": "is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"country: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"country is required", "city requires state"}
	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal(details, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internal := errors.New("pq: relation expenses does not exist")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "pq:")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	internal := errors.New("connection reset")

	response, err := WrapDatabaseError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemDatabaseError), response.Error.Code)
}

func (s *ResponseTestSuite) TestToJSON_MatchesEnvelope() {
	response := NewErrorResponse(InsightsTemporarilyClosed, s.traceID, WithDetails("circuit open"))

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("INSIGHTS_002", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.Equal([]interface{}{"circuit open"}, decoded["error"]["details"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationCountryMissing, http.StatusBadRequest},
		{ValidationStateMissing, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{DashboardUserNotFound, http.StatusNotFound},
		{LocationNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{InsightsSearchSuperseded, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{InsightsQueryFailed, http.StatusBadGateway},
		{DashboardExpensesUnavailable, http.StatusBadGateway},
		{InsightsTemporarilyClosed, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	client := NewErrorResponse(ValidationCountryMissing, s.traceID)
	server := NewErrorResponse(InsightsQueryFailed, s.traceID)

	s.True(client.IsClientError())
	s.False(client.IsServerError())
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(LocationNotFound, s.traceID)

	s.Equal("[LOCATION_001] Location not found (trace: "+s.traceID+")", response.String())
}
