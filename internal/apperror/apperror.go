// Package apperror defines the application error taxonomy and its
// mapping onto HTTP responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// InternalError is a store failure or unhandled condition.
	InternalError ErrorType = iota
	// ValidationError is a missing or malformed required field.
	ValidationError
	// ConflictError is a uniqueness violation, e.g. duplicate email.
	ConflictError
	// AuthError covers bad credentials and invalid or missing session tokens.
	AuthError
	// NotFoundError is an unknown id or email.
	NotFoundError
)

// AppError carries a user-facing message, a type for status mapping,
// and optionally the underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code returns a stable machine-readable identifier for the error type.
func (e *AppError) Code() string {
	switch e.Type {
	case ValidationError:
		return "validation_error"
	case ConflictError:
		return "conflict"
	case AuthError:
		return "unauthenticated"
	case NotFoundError:
		return "not_found"
	default:
		return "internal_error"
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewValidation(message string) *AppError {
	return New(ValidationError, message, nil)
}

func NewConflict(message string) *AppError {
	return New(ConflictError, message, nil)
}

func NewAuth(message string) *AppError {
	return New(AuthError, message, nil)
}

func NewNotFound(message string) *AppError {
	return New(NotFoundError, message, nil)
}

func NewInternal(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// FromError extracts an *AppError from err's chain. Anything else is
// wrapped as an InternalError with a generic message.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("Internal Server Error", err)
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
