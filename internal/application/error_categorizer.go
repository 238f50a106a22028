package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and the worker's skip logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeOperationInProgress, ErrCodeTimeout, ErrCodeRateLimited:
			return CategoryTransient
		case ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		switch domainErr.Code {
		case domain.ErrCodeTransportFailure:
			return CategoryTransient
		case domain.ErrCodeUnrecognizedResponse, domain.ErrCodeNotConfigured:
			return CategoryInfrastructure
		case domain.ErrCodeProviderRejected, domain.ErrCodeMissingCorrelationID:
			return CategoryPermanent
		case domain.ErrCodeUnsupportedCurrency, domain.ErrCodeTokenMismatch:
			return CategoryBusinessRule
		case domain.ErrCodeResourceNotFound, domain.ErrCodeInvalidInput:
			return CategoryClientError
		case domain.ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	if errors.Is(err, domain.ErrNotFound) {
		return CategoryClientError
	}

	return CategoryInfrastructure
}

// IsRetryable returns true if a later attempt could succeed without any change
func IsRetryable(err error) bool {
	return CategorizeError(err) == CategoryTransient
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		switch domainErr.Code {
		case domain.ErrCodeNotConfigured:
			return http.StatusServiceUnavailable
		case domain.ErrCodeResourceNotFound:
			return http.StatusNotFound
		case domain.ErrCodeUnsupportedCurrency, domain.ErrCodeProviderRejected:
			return http.StatusUnprocessableEntity
		case domain.ErrCodeTransportFailure, domain.ErrCodeUnrecognizedResponse:
			return http.StatusBadGateway
		case domain.ErrCodeTokenMismatch, domain.ErrCodeInvalidInput:
			return http.StatusBadRequest
		case domain.ErrCodeMissingCorrelationID:
			return http.StatusConflict
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		return domainErr.Code
	}

	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrCodeResourceNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
