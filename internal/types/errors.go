package types

import (
	"errors"
	"fmt"
)

// Error represents an API error
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	RequestID  string `json:"requestId,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

// APIError represents the error body returned by the YNAB API
type APIError struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Name, e.Detail)
	}
	return e.Name
}
