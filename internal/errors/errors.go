package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEntryNotFound is returned when an entry is absent from both collections.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrUserNotFound is returned when no user profile has been persisted.
	ErrUserNotFound = errors.New("no user found")
	// ErrThemeNotFound is returned when no theme preference has been persisted.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrTokenNotFound is returned when no API token has been issued.
	ErrTokenNotFound = errors.New("token not found")
	// ErrInvalidFilter is returned when a date filter cannot be parsed.
	ErrInvalidFilter = errors.New("invalid filter")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The wrapped message
// is preserved so NotFound responses keep the offending id.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ENTRY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrThemeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "THEME_NOT_FOUND")
	case errors.Is(err, ErrTokenNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOKEN_NOT_FOUND")
	case errors.Is(err, ErrInvalidFilter):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILTER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
