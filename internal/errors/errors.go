package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthRequired         ErrorCode = "AUTH-001"
	ErrCodeAuthInvalidLogin     ErrorCode = "AUTH-002"
	ErrCodeAuthSessionExpired   ErrorCode = "AUTH-003"
	ErrCodeAuthMissingToken     ErrorCode = "AUTH-004"
	ErrCodeAuthOperationPending ErrorCode = "AUTH-005"
	ErrCodeAuthDisposed         ErrorCode = "AUTH-006"

	// Request errors (REQ-001 to REQ-099)
	ErrCodeRequestFailed    ErrorCode = "REQ-001"
	ErrCodeRequestTransport ErrorCode = "REQ-002"
	ErrCodeRequestDecode    ErrorCode = "REQ-003"
	ErrCodeRequestEncode    ErrorCode = "REQ-004"

	// Validation errors (VAL-001 to VAL-099)
	ErrCodeValidationFailed ErrorCode = "VAL-001"
	ErrCodeInvalidPlan      ErrorCode = "VAL-002"
	ErrCodeInvalidChoice    ErrorCode = "VAL-003"

	// Storage errors (STORE-001 to STORE-099)
	ErrCodeStorageRead    ErrorCode = "STORE-001"
	ErrCodeStorageWrite   ErrorCode = "STORE-002"
	ErrCodeStorageDecrypt ErrorCode = "STORE-003"

	// Configuration errors (CFG-001 to CFG-099)
	ErrCodeConfigRead    ErrorCode = "CFG-001"
	ErrCodeConfigWrite   ErrorCode = "CFG-002"
	ErrCodeConfigUnknown ErrorCode = "CFG-003"
)

// AccountError represents an enhanced error with code, suggestions, and documentation
type AccountError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *AccountError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *AccountError) Unwrap() error {
	return e.Cause
}

// New creates a new AccountError
func New(code ErrorCode, message string) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AccountError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *AccountError) WithSuggestion(suggestion string) *AccountError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *AccountError) WithSuggestions(suggestions ...string) *AccountError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *AccountError) WithDocs(url string) *AccountError {
	e.DocsURL = url
	return e
}

// CodeOf returns the code of the first AccountError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var accErr *AccountError
	if stderrors.As(err, &accErr) {
		return accErr.Code, true
	}
	return "", false
}

// HasPrefix reports whether err carries a code from the given family, e.g. "AUTH".
func HasPrefix(err error, family string) bool {
	code, ok := CodeOf(err)
	return ok && strings.HasPrefix(string(code), family+"-")
}

// Common error constructors for frequently used errors

// NewAuthRequiredError is returned when a command needs a logged-in session
func NewAuthRequiredError() *AccountError {
	return New(ErrCodeAuthRequired, "you are not logged in").
		WithSuggestion("Run 'accountctl auth login' to sign in").
		WithSuggestion("Run 'accountctl auth register' to create an account")
}

// NewSessionExpiredError is returned when the stored token was rejected
func NewSessionExpiredError(message string) *AccountError {
	return New(ErrCodeAuthSessionExpired, message).
		WithSuggestion("Run 'accountctl auth login' to sign in again")
}

// NewValidationError wraps field-level validation failures
func NewValidationError(details string) *AccountError {
	return New(ErrCodeValidationFailed, fmt.Sprintf("validation failed: %s", details)).
		WithSuggestion("Fix the highlighted fields and try again").
		WithSuggestion("Run the command with --help to see the expected flags")
}

// NewInvalidChoiceError is returned for an unsupported enum-like flag value
func NewInvalidChoiceError(field, value string, valid ...string) *AccountError {
	return New(ErrCodeInvalidChoice, fmt.Sprintf("invalid value for %s: %q", field, value)).
		WithSuggestion(fmt.Sprintf("Valid values: %s", strings.Join(valid, ", ")))
}

// NewConfigUnknownKeyError is returned by config get/set for unknown keys
func NewConfigUnknownKeyError(key string) *AccountError {
	return New(ErrCodeConfigUnknown, fmt.Sprintf("unknown configuration key: %s", key)).
		WithSuggestion("Run 'accountctl config view' to list the available keys")
}
