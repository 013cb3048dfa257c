package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrTimedOut marks an upstream call that exceeded its deadline.
	ErrTimedOut = errors.New("upstream timed out")
	// ErrNetwork marks a connectivity failure (DNS, refused, reset).
	ErrNetwork = errors.New("network failure")
	// ErrMissingCredential marks a language-model call attempted
	// without a configured API key.
	ErrMissingCredential = errors.New("api key not configured")
	// ErrMalformedUpstream marks a response whose JSON lacked the
	// expected structure beyond what partial parsing can absorb.
	ErrMalformedUpstream = errors.New("malformed upstream response")
)

// UpstreamStatusError is a non-2xx, non-404 response from an upstream
// source. Use errors.As to inspect the status code.
type UpstreamStatusError struct {
	Source string
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.Status)
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
