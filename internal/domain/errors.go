package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUpstream      = errors.New("upstream error")
)

// FieldError describes a validation error for a specific field.
// Message is a short machine-readable token such as "required" or "reached".
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
		return fmt.Sprintf("validation: %s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Reason returns the wire reason of the first field error, e.g. "text_required".
func (e *ValidationError) Reason() string {
	if len(e.Errors) == 0 {
		return "bad_request"
	}
	f := e.Errors[0]
	return strings.ReplaceAll(f.Field+"_"+f.Message, " ", "_")
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Validation errors with a fixed wire reason.
var (
	ErrTextRequired   = NewValidationError("text", "required")
	ErrTextDuplicated = NewValidationError("text", "duplicated")
	ErrLimitReached   = NewValidationError("limit", "reached")
)
