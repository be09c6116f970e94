package ynab

import (
	"errors"

	internalTypes "github.com/eshaffer321/ynab-targets-go/internal/types"
)

// Sentinel errors, aliased from the internal package so errors.Is works
// on errors surfaced by the transport
var (
	// ErrNotAuthenticated is returned when the access token is missing or rejected
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrSubscriptionLapsed is returned when the YNAB subscription has lapsed
	ErrSubscriptionLapsed = internalTypes.ErrSubscriptionLapsed

	// ErrRateLimited is returned when the hourly request limit is exhausted
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrInvalidRequest is returned for invalid requests
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError
)

// Error represents an API error. It is an alias of the internal type so
// errors.As matches errors produced by the transport
type Error = internalTypes.Error

// APIError represents the error body returned by the YNAB API
type APIError = internalTypes.APIError

// NewError creates a new API error
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrSubscriptionLapsed)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
