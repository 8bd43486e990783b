// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// Specific validation errors wrap it so callers can check with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidQuantity is returned when a cart quantity is not a positive integer.
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrValidation)

	// ErrNegativePrice is returned when an item price is below zero.
	ErrNegativePrice = fmt.Errorf("%w: price cannot be negative", ErrValidation)

	// ErrEmptyItemName is returned when an item has no name.
	ErrEmptyItemName = fmt.Errorf("%w: item name cannot be empty", ErrValidation)
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. If err is nil the
// error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
