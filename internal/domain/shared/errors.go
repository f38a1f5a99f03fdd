package shared

import (
	"errors"
	"fmt"
)

// Error codes shared across domains. The HTTP layer maps these to status
// codes; the domain only cares about the category of failure.
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodeInternal          = "INTERNAL"
)

// DomainError is a business rule violation with a stable machine-readable
// code and a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainError creates a DomainError with a formatted message.
func NewDomainError(code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Common sentinel errors. Repositories and services wrap or return these so
// callers can branch with errors.Is.
var (
	ErrNotFound      = &DomainError{Code: ErrCodeNotFound, Message: "resource not found"}
	ErrAlreadyExists = &DomainError{Code: ErrCodeAlreadyExists, Message: "resource already exists"}
	ErrInvalidInput  = &DomainError{Code: ErrCodeInvalidInput, Message: "invalid input"}
)

// IsNotFound reports whether err is, or wraps, a not-found domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeNotFound
	}
	return false
}
