// Package errors provides standardized error handling for the HTTP API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeDuplicateEmail    ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeCandidateNotFound ErrorCode = "CANDIDATE_NOT_FOUND"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured application error that maps to an HTTP
// status. Handlers convert anything else to a generic 500.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Status    int       `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a 400-class error for malformed or missing input.
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewConflictError creates a 409-class error for uniqueness violations.
func NewConflictError(message string) *APIError {
	return &APIError{
		Code:      ErrCodeDuplicateEmail,
		Message:   message,
		Status:    http.StatusConflict,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a 404-class error for absent entities.
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Code:      ErrCodeCandidateNotFound,
		Message:   message,
		Status:    http.StatusNotFound,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates a 500-class error wrapping a store failure.
func NewInternalError(message string, cause error) *APIError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &APIError{
		Code:      ErrCodeInternal,
		Message:   message,
		Details:   details,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// AsAPIError unwraps err into an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
