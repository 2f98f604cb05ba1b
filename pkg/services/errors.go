package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when an insert hits a uniqueness rule,
	// such as a second active conversation on a channel.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries the failing field alongside the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
