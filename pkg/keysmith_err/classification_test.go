// pkg/keysmith_err/classification_test.go

package keysmith_err

import (
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAndExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCategory ErrorCategory
		wantExit     int
	}{
		{name: "invalid length", err: ErrInvalidLength, wantCategory: CategoryValidation, wantExit: 2},
		{name: "no classes", err: ErrNoCharacterTypesSelected, wantCategory: CategoryValidation, wantExit: 2},
		{name: "empty pool", err: ErrEmptyPoolAfterFiltering, wantCategory: CategoryValidation, wantExit: 2},
		{name: "randomness unavailable", err: ErrRandomnessUnavailable, wantCategory: CategorySystem, wantExit: 1},
		{name: "unknown error", err: cerr.New("boom"), wantCategory: CategoryInternal, wantExit: 3},
		{
			name:         "wrapped sentinel keeps its category",
			err:          cerr.WithHint(cerr.Wrap(ErrInvalidLength, "while validating"), "check --length"),
			wantCategory: CategoryValidation,
			wantExit:     2,
		},
		{
			name:         "user-error marker keeps its category",
			err:          NewExpectedError(ErrNoCharacterTypesSelected),
			wantCategory: CategoryValidation,
			wantExit:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, Classify(tt.err))
			assert.Equal(t, tt.wantExit, ExitCode(tt.err))
		})
	}
}

func TestIsExpectedUserError(t *testing.T) {
	assert.False(t, IsExpectedUserError(nil))
	assert.False(t, IsExpectedUserError(cerr.New("boom")))
	assert.True(t, IsExpectedUserError(NewExpectedError(cerr.New("boom"))))
	assert.True(t, IsExpectedUserError(cerr.Wrap(NewExpectedError(cerr.New("boom")), "outer")))
}

func TestNewExpectedErrorNil(t *testing.T) {
	assert.Nil(t, NewExpectedError(nil))
}

func TestUserErrorUnwrap(t *testing.T) {
	cause := ErrInvalidLength
	wrapped := NewExpectedError(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, cause.Error(), wrapped.Error())
}
