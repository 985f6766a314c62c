// ABOUTME: Error types and handling for the talk search library
// ABOUTME: Provides structured errors with a type so callers can branch without importing core packages

package talklib

import (
	"errors"
	"fmt"

	apperrors "talk-search-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid search input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates an invalid client option
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates an unexpected failure
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeValidation
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}

// wrapError converts core errors to library errors
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsValidation(err) {
		return NewError(ErrorTypeValidation, "invalid search request").WithCause(err)
	}
	return NewError(ErrorTypeInternal, "search failed").WithCause(err)
}
