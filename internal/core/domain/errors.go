package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
//
// Codes follow the format BH-<AREA>-<NNNN>, where the numeric part mirrors
// the closest HTTP status.
type DomainError struct {
	Code    string // Error code (e.g., "BH-ROUTE-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support by comparing codes.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error wrapping the given cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Routing errors. All of them are answered with 404.
var (
	// ErrNotFound indicates the request path does not exist under the root.
	ErrNotFound = NewDomainError("BH-ROUTE-4040", "not found")

	// ErrUnsupportedKind indicates the path is neither a regular file nor a directory.
	ErrUnsupportedKind = NewDomainError("BH-ROUTE-4041", "unsupported file kind")

	// ErrDirUnreadable indicates a directory could not be enumerated.
	ErrDirUnreadable = NewDomainError("BH-ROUTE-4042", "directory unreadable")

	// ErrOpenFailed indicates a file vanished or became unreadable between
	// classification and open.
	ErrOpenFailed = NewDomainError("BH-ROUTE-4043", "open failed")
)

// Bootstrap errors. Any of these aborts startup.
var (
	// ErrInvalidConfig indicates the configuration failed verification.
	ErrInvalidConfig = NewDomainError("BH-BOOT-4000", "invalid configuration")

	// ErrChdir indicates the working directory could not be changed to the root.
	ErrChdir = NewDomainError("BH-BOOT-5001", "could not change into served root")

	// ErrChroot indicates the process could not be confined to the root.
	ErrChroot = NewDomainError("BH-BOOT-5002", "chroot failed")

	// ErrDaemonize indicates the process could not detach into the background.
	ErrDaemonize = NewDomainError("BH-BOOT-5003", "daemonizing failed")

	// ErrBind indicates the listening socket could not be bound.
	ErrBind = NewDomainError("BH-BOOT-5004", "bind failed")
)
