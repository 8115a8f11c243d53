package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error carrying the HTTP status it should surface with.
// Services return these; handlers map them to responses.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with an explicit status code
func New(statusCode int, format string, args ...any) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NotFound reports a missing entity
func NotFound(format string, args ...any) *APIError {
	return New(http.StatusNotFound, format, args...)
}

// BadRequest reports a validation or business-rule failure
func BadRequest(format string, args ...any) *APIError {
	return New(http.StatusBadRequest, format, args...)
}

// Conflict reports a state conflict, such as an already in-flight registration
func Conflict(format string, args ...any) *APIError {
	return New(http.StatusConflict, format, args...)
}

// StatusCode extracts the HTTP status for err, defaulting to 500
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsAPIError reports whether err is an APIError and returns it
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
