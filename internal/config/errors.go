package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks configuration schema violations. Use errors.As
	// with *ValidationError to read the individual field errors.
	ErrValidation = errors.New("invalid configuration")
	// ErrLastProfile is returned when deleting the only remaining profile.
	ErrLastProfile = errors.New("cannot delete the last remaining profile")
)

// FieldError names one violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError carries every violated field of one validation run, not
// just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// newValidationError returns nil when no fields are violated.
func newValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
