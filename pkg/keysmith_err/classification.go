// pkg/keysmith_err/classification.go
//
// Error classification with exit codes, so scripts driving the CLI can tell
// bad input apart from a broken environment.

package keysmith_err

import (
	cerr "github.com/cockroachdb/errors"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/environment issues, including a dead entropy source (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - input validation failures (exit 2)
	CategoryValidation
	// CategoryUser - user cancelled/interrupted (exit 130)
	CategoryUser
	// CategoryInternal - bugs in keysmith itself (exit 3)
	CategoryInternal
)

// Classify maps an error onto its category.
func Classify(err error) ErrorCategory {
	switch {
	case err == nil:
		return CategoryInternal
	case cerr.Is(err, ErrInvalidLength),
		cerr.Is(err, ErrNoCharacterTypesSelected),
		cerr.Is(err, ErrEmptyPoolAfterFiltering):
		return CategoryValidation
	case cerr.Is(err, ErrRandomnessUnavailable):
		return CategorySystem
	default:
		return CategoryInternal
	}
}

// ExitCode returns the exit code for an error's category.
func ExitCode(err error) int {
	switch Classify(err) {
	case CategoryValidation:
		return 2
	case CategoryUser:
		return 130
	case CategoryInternal:
		return 3
	default:
		return 1
	}
}
