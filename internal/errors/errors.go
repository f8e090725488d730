package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrContactNotFound is returned when a contact does not exist for the
	// requesting owner. A contact owned by someone else reports the same error.
	ErrContactNotFound = errors.New("contact not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailRegistered is returned when the email is already taken.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrNotAuthorized is returned when the caller may not act on the resource.
	ErrNotAuthorized = errors.New("not authorized")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTACT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailRegistered):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
