package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCategory defines the normalized failure taxonomy for exchanges that
// never produced a usable HTTP response
type ErrorCategory string

const (
	// ErrorTimeout indicates TrustedForm took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the lead could not be turned into a request
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorProviderOutage indicates TrustedForm is unreachable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorCircuitOpen indicates the exchange was short-circuited
	ErrorCircuitOpen ErrorCategory = "circuit_open"

	// ErrorCanceled indicates the caller gave up
	ErrorCanceled ErrorCategory = "canceled"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps exchange failures with normalized categorization
type ProviderError struct {
	Category   ErrorCategory
	ProviderID string
	Message    string
	Underlying error
	Transient  bool // counts against the circuit breaker
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

// Unwrap supports error unwrapping
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a new normalized provider error
func NewProviderError(category ErrorCategory, providerID, message string, underlying error) *ProviderError {
	transient := category == ErrorTimeout || category == ErrorProviderOutage

	return &ProviderError{
		Category:   category,
		ProviderID: providerID,
		Message:    message,
		Underlying: underlying,
		Transient:  transient,
	}
}

// Classify maps a transport error onto the taxonomy.
func Classify(providerID string, err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	switch {
	case errors.Is(err, context.Canceled):
		return NewProviderError(ErrorCanceled, providerID, "request canceled", err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewProviderError(ErrorTimeout, providerID, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewProviderError(ErrorTimeout, providerID, "request timed out", err)
	}
	return NewProviderError(ErrorProviderOutage, providerID, "request failed", err)
}

// IsTransient checks if an error should trip the circuit breaker
func IsTransient(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Transient
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// Sentinel errors for common cases
var (
	ErrProviderNotFound = errors.New("adapter not found")
)
