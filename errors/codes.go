package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Option validation errors
const (
	// ErrCodeUnsupportedOption indicates an option name outside the recognized set.
	ErrCodeUnsupportedOption ErrorCode = "UNSUPPORTED_OPTION"
	// ErrCodeUnsupportedValue indicates an option value outside its legal set.
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"
	// ErrCodeInsufficientNoiseFactors indicates too few noise factors for the
	// selected extrapolator.
	ErrCodeInsufficientNoiseFactors ErrorCode = "INSUFFICIENT_NOISE_FACTORS"
)

// Generic validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected client-side error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUnsupportedOption:        false,
	ErrCodeUnsupportedValue:         false,
	ErrCodeInsufficientNoiseFactors: false,
	ErrCodeInvalidInput:             false,
	ErrCodeMissingField:             false,
	ErrCodeInternal:                 false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// Validation failures are rejections of static data and are never retryable.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
