package errors

import (
	"errors"
	"fmt"
)

// Code classifies a binding-resolution failure.
type Code string

const (
	// CodeMalformedCredential indicates a raw connection string that does not
	// match the expected scheme://[user[:password]@]host[:port][/path] shape.
	CodeMalformedCredential Code = "MALFORMED_CREDENTIAL"
	// CodeUnknownService indicates a catalog lookup for an id that is not bound.
	CodeUnknownService Code = "UNKNOWN_SERVICE"
	// CodeCatalogUnavailable indicates a catalog build that could not complete.
	// No partial catalog is ever exposed behind this code.
	CodeCatalogUnavailable Code = "CATALOG_UNAVAILABLE"
	// CodeRegistrationFailed indicates the registration sink rejected one entry.
	CodeRegistrationFailed Code = "REGISTRATION_FAILED"
	// CodeSourceUnavailable indicates the platform binding source could not be
	// fetched (unreachable, unparsable, or permission denied).
	CodeSourceUnavailable Code = "SOURCE_UNAVAILABLE"
)

// BindingError provides structured error information for binding resolution.
// It carries a code for programmatic handling, a human-readable message, the
// underlying cause, and optional context for diagnosis. Context must never
// contain credential material; callers attach ids and redacted strings only.
type BindingError struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *BindingError) Unwrap() error {
	return e.Cause
}

// New creates a new BindingError with the given code and message.
func New(code Code, message string) *BindingError {
	return &BindingError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new BindingError with context information.
func NewWithContext(code Code, message string, context map[string]any) *BindingError {
	return &BindingError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code Code, message string, cause error) *BindingError {
	return &BindingError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with a code and context information.
func WrapWithContext(code Code, message string, cause error, context map[string]any) *BindingError {
	return &BindingError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the outermost BindingError in err's chain,
// or the empty Code when err carries no binding classification.
func CodeOf(err error) Code {
	var be *BindingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsMalformedCredential reports whether err is classified as a parse failure.
func IsMalformedCredential(err error) bool {
	return CodeOf(err) == CodeMalformedCredential
}

// IsUnknownService reports whether err is classified as a failed lookup.
func IsUnknownService(err error) bool {
	return CodeOf(err) == CodeUnknownService
}

// IsCatalogUnavailable reports whether err is classified as a failed build.
func IsCatalogUnavailable(err error) bool {
	return CodeOf(err) == CodeCatalogUnavailable
}

// IsRegistrationFailed reports whether err is classified as a sink rejection.
func IsRegistrationFailed(err error) bool {
	return CodeOf(err) == CodeRegistrationFailed
}

// IsSourceUnavailable reports whether err is classified as a fetch failure.
func IsSourceUnavailable(err error) bool {
	return CodeOf(err) == CodeSourceUnavailable
}
