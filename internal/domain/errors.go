package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation failure on a specific field,
// carrying the raw value that failed.
type FieldError struct {
	Field   string
	Value   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		fe := e.Errors[0]
		if fe.Value != "" {
			return fmt.Sprintf("validation: %s %q: %s", fe.Field, fe.Value, fe.Message)
		}
		return fmt.Sprintf("validation: %s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Value: value, Message: message}},
	}
}

// NotFoundError reports a lookup that matched no record in the store.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such word: %q", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given lookup key.
func NewNotFoundError(key string) *NotFoundError {
	return &NotFoundError{Key: key}
}
