package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the editor core. Handlers map these to HTTP
// statuses; none of them is fatal to the session.
var (
	ErrInvalidFieldType     = errors.New("invalid field type")
	ErrNoToolArmed          = errors.New("no placement tool armed")
	ErrOutsidePage          = errors.New("interaction outside rendered page bounds")
	ErrFieldNotFound        = errors.New("field not found")
	ErrCaptureNotOpen       = errors.New("no value capture in progress")
	ErrNoFields             = errors.New("no fields placed on the document")
	ErrRequiredUnconfigured = errors.New("required fields are not configured")
	ErrDocumentSent         = errors.New("document already sent")
)

// ValidationError describes why a value-capture save was rejected. The
// capture modal stays open; the field is left untouched.
type ValidationError struct {
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("capture validation failed: %s", e.Reason)
}

// newValidationError creates a ValidationError with a formatted reason
func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
