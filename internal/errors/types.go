package errors

import (
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "VALIDATION_ERROR"
	ErrorTypeCredentialMissing ErrorType = "CREDENTIAL_MISSING"
	ErrorTypeCatalogFetch      ErrorType = "CATALOG_FETCH_ERROR"
	ErrorTypeNoCapableModel    ErrorType = "NO_CAPABLE_MODEL"
	ErrorTypeGeneration        ErrorType = "GENERATION_ERROR"
	ErrorTypeGenerationTimeout ErrorType = "GENERATION_TIMEOUT"
	ErrorTypeNotFound          ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeInternal          ErrorType = "INTERNAL_ERROR"
)

// AppError represents a structured error for the application
type AppError struct {
	Type          ErrorType `json:"type"`
	Message       string    `json:"message"`
	StatusCode    int       `json:"statusCode"`
	ErrorCode     string    `json:"errorCode"`
	IsOperational bool      `json:"isOperational"`
	Recovery      string    `json:"recoverySuggestion,omitempty"`
	Err           error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any
func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the application-specific error code
func (e *AppError) Code() string {
	return e.ErrorCode
}

// RecoverySuggestion returns the suggestion on how to recover from the error
func (e *AppError) RecoverySuggestion() string {
	return e.Recovery
}

// IsRetryable reports whether re-submitting the same request later may succeed.
// Nothing is retried automatically; this only informs the message shown to the user.
func (e *AppError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeGenerationTimeout:
		return true
	case ErrorTypeCatalogFetch, ErrorTypeGeneration:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// NewValidationError creates a new validation error (400)
func NewValidationError(message string, errorCode string, suggestion string) *AppError {
	return &AppError{
		Type:          ErrorTypeValidation,
		Message:       message,
		StatusCode:    http.StatusBadRequest,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      suggestion,
	}
}

// NewNotFoundError creates a new not found error (404)
func NewNotFoundError(message string, errorCode string, suggestion string) *AppError {
	return &AppError{
		Type:          ErrorTypeNotFound,
		Message:       message,
		StatusCode:    http.StatusNotFound,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      suggestion,
	}
}

// NewCredentialMissingError creates a new credential missing error (503)
func NewCredentialMissingError() *AppError {
	return &AppError{
		Type:          ErrorTypeCredentialMissing,
		Message:       "no API credential is configured",
		StatusCode:    http.StatusServiceUnavailable,
		ErrorCode:     "CREDENTIAL_MISSING",
		IsOperational: true,
		Recovery:      "Set GOOGLE_API_KEY and restart the service.",
	}
}

// NewCatalogFetchError creates a new catalog fetch error (502)
func NewCatalogFetchError(message string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeCatalogFetch,
		Message:       message,
		StatusCode:    http.StatusBadGateway,
		ErrorCode:     "CATALOG_FETCH_FAILED",
		IsOperational: true,
		Recovery:      "Verify the API credential and network access, then submit again.",
		Err:           err,
	}
}

// NewNoCapableModelError creates a new no capable model error (502)
func NewNoCapableModelError() *AppError {
	return &AppError{
		Type:          ErrorTypeNoCapableModel,
		Message:       "no advertised model supports content generation",
		StatusCode:    http.StatusBadGateway,
		ErrorCode:     "NO_CAPABLE_MODEL",
		IsOperational: true,
		Recovery:      "The remote catalog is unusable for generation. Check the account's model access.",
	}
}

// NewGenerationError creates a new generation error (500)
func NewGenerationError(message string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeGeneration,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     "GENERATION_FAILED",
		IsOperational: true,
		Recovery:      "Adjust the ingredients or submit the request again.",
		Err:           err,
	}
}

// NewGenerationTimeoutError creates a new generation timeout error (504)
func NewGenerationTimeoutError(err error) *AppError {
	return &AppError{
		Type:          ErrorTypeGenerationTimeout,
		Message:       "generation timed out",
		StatusCode:    http.StatusGatewayTimeout,
		ErrorCode:     "GENERATION_TIMED_OUT",
		IsOperational: true,
		Recovery:      "Wait a moment and submit the request again.",
		Err:           err,
	}
}

// NewInternalError creates a new internal error (500)
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeInternal,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     "INTERNAL_ERROR",
		IsOperational: false,
		Err:           err,
	}
}
