package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeNotConfigured        = "NOT_CONFIGURED"
	ErrCodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	ErrCodeUnsupportedCurrency  = "UNSUPPORTED_CURRENCY"
	ErrCodeTransportFailure     = "TRANSPORT_FAILURE"
	ErrCodeUnrecognizedResponse = "UNRECOGNIZED_RESPONSE"
	ErrCodeProviderRejected     = "PROVIDER_REJECTED"
	ErrCodeTokenMismatch        = "TOKEN_MISMATCH"
	ErrCodeMissingCorrelationID = "MISSING_CORRELATION_ID"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

func NewNotConfiguredError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNotConfigured,
		Message: "plugin not configured",
	}
}

// NewResourceNotFoundError reports a missing order, customer or address.
func NewResourceNotFoundError(resource string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeResourceNotFound,
		Message: fmt.Sprintf("%s cannot be loaded", resource),
		Err:     err,
	}
}

func NewUnsupportedCurrencyError(currency string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedCurrency,
		Message: fmt.Sprintf("currency %q is not supported", currency),
	}
}

func NewTransportFailureError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransportFailure,
		Message: "provider unreachable",
		Err:     err,
	}
}

func NewUnrecognizedResponseError(body string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnrecognizedResponse,
		Message: fmt.Sprintf("could not recognize response - '%s'", body),
		Err:     err,
	}
}

// NewProviderRejectedError carries the provider's own error message.
func NewProviderRejectedError(result, providerMessage string) *DomainError {
	msg := fmt.Sprintf("request result - %s", result)
	if providerMessage != "" {
		msg = fmt.Sprintf("%s. %s", msg, providerMessage)
	}
	return &DomainError{
		Code:    ErrCodeProviderRejected,
		Message: msg,
	}
}

// NewTokenMismatchError never echoes the stored token back to the caller.
func NewTokenMismatchError(received string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTokenMismatch,
		Message: fmt.Sprintf("received order token (%s) does not match stored token", received),
	}
}

func NewMissingCorrelationIDError(what string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingCorrelationID,
		Message: fmt.Sprintf("%s not set", what),
	}
}

func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// AsDomainError returns the first DomainError in err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
