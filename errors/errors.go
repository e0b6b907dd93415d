package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified client error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Option Validation Error Constructors ---

// UnsupportedOption creates a new AppError for an option name outside the
// recognized set. The message names the offending key.
func UnsupportedOption(option, group string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedOption, Message: fmt.Sprintf("Unsupported option '%s' for %s.", option, group),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"option": option, "group": group},
	}
}

// UnsupportedValue creates a new AppError for an option value outside its
// legal set. The message states the offending value and lists the full set.
func UnsupportedValue(option string, value any, supported []string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedValue, Message: fmt.Sprintf("Unsupported value '%v' for %s. Supported values are [%s].",
			value, option, strings.Join(supported, ", ")),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"option": option, "value": value, "supported": supported},
	}
}

// InsufficientNoiseFactors creates a new AppError for an extrapolator whose
// minimum noise-factor count is not met.
func InsufficientNoiseFactors(extrapolator string, minimum, got int) *AppError {
	return &AppError{
		Code: ErrCodeInsufficientNoiseFactors, Message: fmt.Sprintf("%s requires at least %d noise_factors, got %d.",
			extrapolator, minimum, got),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"extrapolator": extrapolator, "minimum": minimum, "got": got},
	}
}

// --- Generic Error Constructors ---

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected client-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
