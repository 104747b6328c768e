// pkg/password/password_test.go

package password

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysmith/keysmith/pkg/keysmith_err"
	"github.com/keysmith/keysmith/pkg/strength"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "length below minimum",
			mutate:  func(c *Config) { c.Length = 3 },
			wantErr: keysmith_err.ErrInvalidLength,
		},
		{
			name:    "length above maximum",
			mutate:  func(c *Config) { c.Length = 129 },
			wantErr: keysmith_err.ErrInvalidLength,
		},
		{
			name:   "length at bounds",
			mutate: func(c *Config) { c.Length = 4 },
		},
		{
			name: "no classes selected",
			mutate: func(c *Config) {
				c.IncludeUppercase = false
				c.IncludeLowercase = false
				c.IncludeNumbers = false
				c.IncludeSymbols = false
			},
			wantErr: keysmith_err.ErrNoCharacterTypesSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateLengthAndMembership(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 24

	result, err := Generate(cfg)
	require.NoError(t, err)

	assert.Len(t, result.Password, 24)
	for i := 0; i < len(result.Password); i++ {
		assert.True(t, result.Pool.Contains(result.Password[i]))
	}
}

func TestGenerateValidationFailureIsNotAnAttempt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 2

	result, err := Generate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, keysmith_err.ErrInvalidLength)
	assert.Empty(t, result.Password)
}

// Re-evaluating a generated password against its pool size must reproduce
// the report bit for bit: the evaluator is pure.
func TestGenerateEvaluateRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 16

	result, err := Generate(cfg)
	require.NoError(t, err)

	again := strength.EvaluateWithRate(result.Password, result.Pool.Size(), cfg.AttackRate)
	assert.Equal(t, result.Report, again)
}

func TestGenerateFullPoolScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 16

	result, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, 94, result.Pool.Size())
	assert.InDelta(t, 16*math.Log2(94), result.Report.RawEntropyBits, 0.001) // ≈ 104.9 bits
}

func TestGenerateFreshEachCall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 32

	first, err := Generate(cfg)
	require.NoError(t, err)
	second, err := Generate(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.Password, second.Password)
}
