// Package errors defines the application error taxonomy. Every failure a
// handler can surface maps to an AppError carrying the HTTP status and the
// business error code; anything else is treated as an unexpected 500.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface all application-specific errors implement.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy of the error with a different user-facing
// message, keeping the status and code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Validationf builds a 400 validation error with a formatted message.
func Validationf(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", fmt.Sprintf(format, args...), "")
}

// Predefined error types
var (
	// Auth errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_MISSING",
		"Token not found",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_REVOKED",
		"Token is already invalidated",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrUserMismatch = NewBaseError(
		http.StatusBadRequest,
		"USER_MISMATCH",
		"Token does not belong to the authenticated user",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHENTICATED",
		"User not authenticated",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to act on this user",
		"",
	)

	ErrSubjectResolution = NewBaseError(
		http.StatusBadRequest,
		"SUBJECT_RESOLUTION_FAILED",
		"Token subject no longer exists",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User does not exist",
		"",
	)

	// The collection endpoints report an unresolved user as a plain bad
	// request rather than a 404.
	ErrUserUnresolved = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User does not exist",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"A user with this username or email already exists",
		"",
	)

	// Collection errors
	ErrItemMissing = NewBaseError(
		http.StatusBadRequest,
		"ITEM_MISSING",
		"No pujo provided",
		"",
	)

	ErrDuplicateItem = NewBaseError(
		http.StatusNotAcceptable,
		"DUPLICATE_ITEM",
		"This pujo is already in the collection",
		"",
	)

	ErrItemNotInCollection = NewBaseError(
		http.StatusBadRequest,
		"ITEM_NOT_IN_COLLECTION",
		"Pujo not found in the collection",
		"",
	)

	// Pujo errors
	ErrPujoNotFound = NewBaseError(
		http.StatusNotFound,
		"PUJO_NOT_FOUND",
		"Pujo does not exist",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError wraps an unexpected database failure as an AppError.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
