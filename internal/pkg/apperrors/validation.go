package apperrors

import (
	"fmt"
	"strings"
)

// FieldViolation describes a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level violations for one request.
// It unwraps to ErrValidationFailed so callers can match the error kind
// without inspecting the field list.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates an empty validation error container
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a field violation and returns the container for chaining
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
	return e
}

// HasViolations reports whether any violation was recorded
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
