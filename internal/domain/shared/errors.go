package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain errors without string matching on codes.
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION"
	KindOutOfBalance      ErrorKind = "OUT_OF_BALANCE"
	KindAccountResolution ErrorKind = "ACCOUNT_RESOLUTION"
	KindStateConflict     ErrorKind = "STATE_CONFLICT"
	KindPersistence       ErrorKind = "PERSISTENCE"
	KindNotFound          ErrorKind = "NOT_FOUND"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error. A target without a code
// matches every error of the same kind, so the kind sentinels below can be
// used with errors.Is.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	if t.Code == "" {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

// NewDomainError creates a new validation-kind domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Kind:    KindValidation,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a ValidationError: malformed or missing input.
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

// NewOutOfBalanceError creates an OutOfBalanceError.
func NewOutOfBalanceError(message string) *DomainError {
	return &DomainError{Kind: KindOutOfBalance, Code: "OUT_OF_BALANCE", Message: message}
}

// NewAccountResolutionError creates an AccountResolutionError for an account code.
func NewAccountResolutionError(accountNumber, reason string) *DomainError {
	return &DomainError{
		Kind:    KindAccountResolution,
		Code:    "ACCOUNT_NOT_RESOLVED",
		Message: fmt.Sprintf("account %s: %s", accountNumber, reason),
	}
}

// NewStateConflictError creates a StateConflictError.
func NewStateConflictError(code, message string) *DomainError {
	return &DomainError{Kind: KindStateConflict, Code: code, Message: message}
}

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *DomainError {
	return &DomainError{
		Kind:    KindPersistence,
		Code:    "PERSISTENCE_FAILURE",
		Message: op,
		Err:     err,
	}
}

// NewNotFoundError creates a NotFound error for the named resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", Message: resource + " not found"}
}

// KindOf returns the kind of err, or "" when err is not a DomainError.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// Kind sentinels, usable with errors.Is
var (
	ErrValidation        = &DomainError{Kind: KindValidation}
	ErrOutOfBalance      = &DomainError{Kind: KindOutOfBalance}
	ErrAccountResolution = &DomainError{Kind: KindAccountResolution}
	ErrStateConflict     = &DomainError{Kind: KindStateConflict}
	ErrPersistence       = &DomainError{Kind: KindPersistence}
)

// Common domain errors
var (
	ErrNotFound            = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInvalidInput        = NewValidationError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewStateConflictError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewStateConflictError("INVALID_STATE", "Operation not allowed in current state")
)
