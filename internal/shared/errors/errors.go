// Package errors provides application-level error types and utilities.
// Every error that reaches an HTTP boundary is either an *AppError or is
// reported as an internal error.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypePersistence  ErrorType = "persistence_error"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeRateLimited  ErrorType = "rate_limited"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error.
// The admin UI treats duplicates as bad input, so conflicts answer 400.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusBadRequest, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewRateLimitedError creates a new rate limit error
func NewRateLimitedError(message string) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests, message, nil)
}

// NewPersistenceError wraps a database failure. The driver text is kept in
// the message since only administrators reach these endpoints.
func NewPersistenceError(message string, cause error) *AppError {
	e := newAppError(ErrorTypePersistence, http.StatusInternalServerError, message, nil)
	if cause != nil {
		e.Message = fmt.Sprintf("%s: %s", message, rootMessage(cause))
		e.cause = cause
	}
	return e
}

// rootMessage drops the fmt.Errorf prefixes added on the way up and keeps the driver text.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsPersistenceError checks if the error is a persistence error
func IsPersistenceError(err error) bool { return isType(err, ErrorTypePersistence) }

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
