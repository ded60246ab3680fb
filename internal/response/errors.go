package response

import "fmt"

// Error codes shared between services and handlers
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the application-level error carried from service to handler
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with an arbitrary code. An optional
// details string carries the underlying cause for logs.
func NewAppError(code, message string, details ...string) *AppError {
	e := &AppError{Code: code, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// NewValidationError creates a validation AppError
func NewValidationError(message string, details ...string) *AppError {
	return NewAppError(ErrCodeValidation, message, details...)
}

// NewNotFoundError creates a not-found AppError
func NewNotFoundError(message string, details ...string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details...)
}

// NewForbiddenError creates a forbidden AppError
func NewForbiddenError(message string, details ...string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details...)
}
