package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeAuthentication ErrorType = "authentication"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeInvalidState   ErrorType = "invalid_state"
	ErrorTypeInternal       ErrorType = "internal"
)

// RegistryError represents a structured error in the staff registry
type RegistryError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *RegistryError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeAuthentication, Code: code, Message: message}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeForbidden, Code: code, Message: message}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeNotFound, Code: code, Message: message}
}

// NewConflictError creates a new conflict error
func NewConflictError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeConflict, Code: code, Message: message}
}

// NewInvalidStateError creates a new invalid state error
func NewInvalidStateError(code, message string) *RegistryError {
	return &RegistryError{Type: ErrorTypeInvalidState, Code: code, Message: message}
}

// NewInternalError creates a new internal error
func NewInternalError(code, message string, cause error) *RegistryError {
	return &RegistryError{Type: ErrorTypeInternal, Code: code, Message: message, Cause: cause}
}

// IsErrorType reports whether err is a RegistryError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	var regErr *RegistryError
	if errors.As(err, &regErr) {
		return regErr.Type == t
	}
	return false
}

// HTTPStatus maps an error to the HTTP status code the API responds with.
// Malformed input and inactive references share 400; duplicate identifying
// fields get 409.
func HTTPStatus(err error) int {
	var regErr *RegistryError
	if !errors.As(err, &regErr) {
		return http.StatusInternalServerError
	}

	switch regErr.Type {
	case ErrorTypeValidation, ErrorTypeInvalidState:
		return http.StatusBadRequest
	case ErrorTypeAuthentication:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Common error codes
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInvalidID      = "INVALID_ID_FORMAT"
	ErrCodeEmptyPayload   = "EMPTY_PAYLOAD"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInactive       = "INACTIVE_REFERENCE"
	ErrCodeNoToken        = "NO_TOKEN"
	ErrCodeWrongRole      = "WRONG_ROLE"
	ErrCodeBadCredentials = "INVALID_CREDENTIALS"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
