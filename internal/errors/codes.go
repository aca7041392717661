package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationRequiredField  ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat  ErrorCode = "VALIDATION_003"
	ValidationOutOfRange     ErrorCode = "VALIDATION_004"
	ValidationInvalidDate    ErrorCode = "VALIDATION_005"
	ValidationCountryMissing ErrorCode = "VALIDATION_006"
	ValidationStateMissing   ErrorCode = "VALIDATION_007"
	ValidationInvalidScope   ErrorCode = "VALIDATION_008"
)

// Dashboard error codes (DASHBOARD_*)
const (
	DashboardExpensesUnavailable ErrorCode = "DASHBOARD_001"
	DashboardUserNotFound        ErrorCode = "DASHBOARD_002"
)

// Community insights error codes (INSIGHTS_*)
const (
	InsightsQueryFailed       ErrorCode = "INSIGHTS_001"
	InsightsTemporarilyClosed ErrorCode = "INSIGHTS_002"
	InsightsSearchSuperseded  ErrorCode = "INSIGHTS_003"
)

// Location error codes (LOCATION_*)
const (
	LocationNotFound    ErrorCode = "LOCATION_001"
	LocationUnavailable ErrorCode = "LOCATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:        "Validation failed",
	ValidationRequiredField:  "Required field is missing",
	ValidationInvalidFormat:  "Invalid field format",
	ValidationOutOfRange:     "Field value is out of allowed range",
	ValidationInvalidDate:    "Invalid date format or range",
	ValidationCountryMissing: "Please enter a country to search",
	ValidationStateMissing:   "Please select a state before choosing a city",
	ValidationInvalidScope:   "Location filter is not valid",

	DashboardExpensesUnavailable: "Your expenses could not be loaded",
	DashboardUserNotFound:        "User profile not found",

	InsightsQueryFailed:       "Error fetching insights",
	InsightsTemporarilyClosed: "Community insights are temporarily unavailable. Please try again later",
	InsightsSearchSuperseded:  "Search was replaced by a newer search",

	LocationNotFound:    "Location not found",
	LocationUnavailable: "Locations could not be loaded",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
