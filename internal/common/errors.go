// Package common defines shared sentinel and typed errors used across the
// service and repository layers. Callers match them with errors.Is/errors.As.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication failure. The message is deliberately identical for an
	// unknown email and a wrong password so callers cannot probe which
	// accounts exist.
	ErrInvalidCredentials = errors.New("Invalid email or password.")
)

// ValidationError reports malformed or unsafe input. The reason is shown to
// the caller verbatim, so it must not echo back user-supplied values.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// DuplicateEmailError reports a uniqueness violation on an email column,
// whether detected by a pre-check or by the store's unique index.
type DuplicateEmailError struct {
	Msg string
}

func (e *DuplicateEmailError) Error() string {
	return e.Msg
}

// IsDuplicateEmail reports whether err is (or wraps) a DuplicateEmailError.
func IsDuplicateEmail(err error) bool {
	var de *DuplicateEmailError
	return errors.As(err, &de)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
