package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError creates a domain error that keeps the underlying cause
func WrapDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes shared across the onboarding domain
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidState     = "INVALID_STATE"
	CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	CodeNotConfigured    = "NOT_CONFIGURED"
	CodePDFFailed        = "PDF_GENERATION_FAILED"
	CodeSendFailed       = "EMAIL_SEND_FAILED"
)

// ErrNotConfigured is returned by every send when the session has no SMTP account
var ErrNotConfigured = NewDomainError(CodeNotConfigured, "Please configure email settings first in the Email Configuration section.")
