// pkg/keysmith_err/types.go

package keysmith_err

import (
	cerr "github.com/cockroachdb/errors"
)

// Typed failure conditions for the generation pipeline. Callers compare with
// errors.Is; the CLI maps each kind to a user-facing message and exit code.
var (
	// ErrInvalidLength means the requested length is outside the configured bounds.
	ErrInvalidLength = cerr.New("password length outside allowed bounds")

	// ErrNoCharacterTypesSelected means every include flag was false.
	ErrNoCharacterTypesSelected = cerr.New("no character types selected")

	// ErrEmptyPoolAfterFiltering means the ambiguous-character filter removed
	// every character the selection would otherwise have contributed.
	ErrEmptyPoolAfterFiltering = cerr.New("character pool empty after ambiguous filtering")

	// ErrRandomnessUnavailable means the OS entropy source could not be read.
	// There is deliberately no fallback to a non-cryptographic source.
	ErrRandomnessUnavailable = cerr.New("cryptographically secure random source unavailable")
)

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError reports whether err was marked as a user error.
func IsExpectedUserError(err error) bool {
	if err == nil {
		return false
	}
	var ue *UserError
	return cerr.As(err, &ue)
}
