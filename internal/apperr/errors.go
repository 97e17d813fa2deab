// Package apperr defines the error taxonomy shared by services and handlers.
// Services return these; the HTTP layer maps them onto status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced user, joke or category does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when input fails a business rule
	// (out-of-range rating value, self-follow, malformed input).
	ErrValidation = errors.New("invalid input")

	// ErrConflict is returned when the request clashes with existing state
	// (username or email already taken).
	ErrConflict = errors.New("conflict")

	// ErrStorage wraps database failures the service layer cannot interpret.
	ErrStorage = errors.New("storage failure")
)

// Error wraps a sentinel with human-readable context. Supports errors.Is
// through Unwrap.
type Error struct {
	Base    error
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

func (e *Error) Unwrap() error {
	return e.Base
}

// NotFound builds a not-found error naming the missing resource.
func NotFound(resource string) *Error {
	return &Error{Base: ErrNotFound, Message: resource}
}

// Validation builds a validation error for a specific field.
func Validation(field, message string) *Error {
	return &Error{Base: ErrValidation, Message: message, Field: field}
}

// Conflict builds a conflict error with context.
func Conflict(message string) *Error {
	return &Error{Base: ErrConflict, Message: message}
}

// Storage wraps an underlying database error.
func Storage(err error) *Error {
	return &Error{Base: ErrStorage, Message: err.Error()}
}

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
