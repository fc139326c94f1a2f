package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeTemplateNotFound is used when a letter template file is missing
	ErrCodeTemplateNotFound = "ERR_TEMPLATE_NOT_FOUND"
)

// Workflow error codes
const (
	// ErrCodeInvalidState is used when a step runs before the one it depends on
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeNotConfigured is used when a send is attempted without SMTP settings
	ErrCodeNotConfigured = "ERR_NOT_CONFIGURED"
)

// Delivery error codes
const (
	// ErrCodePDFFailed is used when no PDF strategy produced a document
	ErrCodePDFFailed = "ERR_PDF_GENERATION_FAILED"
	// ErrCodeSendFailed is used when the SMTP server rejected a message
	ErrCodeSendFailed = "ERR_EMAIL_SEND_FAILED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeTemplateNotFound: http.StatusInternalServerError,

	// Workflow errors -> 422 / 412
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	ErrCodeNotConfigured: http.StatusPreconditionFailed,

	// Delivery errors -> 502 Bad Gateway
	ErrCodePDFFailed:  http.StatusBadGateway,
	ErrCodeSendFailed: http.StatusBadGateway,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain and renderer error codes to the
// standardized codes returned by the API
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_STATE":         ErrCodeInvalidState,
	"VALIDATION_ERROR":      ErrCodeValidation,
	"BAD_REQUEST":           ErrCodeBadRequest,
	"INTERNAL_ERROR":        ErrCodeInternal,
	"TEMPLATE_NOT_FOUND":    ErrCodeTemplateNotFound,
	"NOT_CONFIGURED":        ErrCodeNotConfigured,
	"PDF_GENERATION_FAILED": ErrCodePDFFailed,
	"EMAIL_SEND_FAILED":     ErrCodeSendFailed,
	"ALL_BACKENDS_FAILED":   ErrCodePDFFailed,
	"RENDER_TIMEOUT":        ErrCodePDFFailed,
	"RENDER_FAILED":         ErrCodePDFFailed,
	"INVALID_PDF":           ErrCodeValidationFormat,
}

// NormalizeErrorCode converts a legacy error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
