package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a domain error.
type ErrorType string

const (
	// ErrorTypeValidation indicates a supplied parameter violated its
	// type or enum constraint.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeResolution indicates an interface identifier could not be
	// mapped to a canonical interface name.
	ErrorTypeResolution ErrorType = "RESOLUTION"

	// ErrorTypeSystem indicates a system level failure (I/O, subprocess).
	ErrorTypeSystem ErrorType = "SYSTEM"

	// ErrorTypeNetwork indicates a failure talking to the network service.
	ErrorTypeNetwork ErrorType = "NETWORK"

	// ErrorTypeTimeout indicates an operation exceeded its deadline.
	ErrorTypeTimeout ErrorType = "TIMEOUT"
)

// DomainError is the error type carried across layer boundaries.
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is compares errors by type.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewResolutionError creates an identifier resolution error.
func NewResolutionError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeResolution,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemError creates a system error.
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeSystem,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates a network service error.
func NewNetworkError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeTimeout,
		Message: message,
	}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeValidation
	}
	return false
}

// IsResolutionError reports whether err is a resolution error.
func IsResolutionError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeResolution
	}
	return false
}

// IsSystemError reports whether err is a system error.
func IsSystemError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeSystem
	}
	return false
}

// IsNetworkError reports whether err is a network service error.
func IsNetworkError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeNetwork
	}
	return false
}
