// pkg/crypto/generate_test.go

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysmith/keysmith/pkg/charset"
)

func TestGeneratePassword(t *testing.T) {
	tests := []struct {
		name   string
		opts   charset.Options
		length int
	}{
		{
			name:   "full pool default length",
			opts:   charset.Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true},
			length: 12,
		},
		{
			name:   "minimum length",
			opts:   charset.Options{Lowercase: true},
			length: 4,
		},
		{
			name:   "maximum length",
			opts:   charset.Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true},
			length: 128,
		},
		{
			name:   "filtered pool",
			opts:   charset.Options{Digits: true, ExcludeAmbiguous: true},
			length: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := charset.Build(tt.opts)
			require.NoError(t, err)

			pw, err := GeneratePassword(pool, tt.length)
			require.NoError(t, err)
			assert.Len(t, pw, tt.length)

			for i := 0; i < len(pw); i++ {
				assert.True(t, pool.Contains(pw[i]),
					"character %q not in pool", string(pw[i]))
			}
		})
	}
}

func TestGeneratePasswordEmptyPool(t *testing.T) {
	_, err := GeneratePassword(charset.Pool{}, 12)
	assert.Error(t, err)
}

func TestGeneratePasswordNonPositiveLength(t *testing.T) {
	pool, err := charset.Build(charset.Options{Lowercase: true})
	require.NoError(t, err)

	_, err = GeneratePassword(pool, 0)
	assert.Error(t, err)
	_, err = GeneratePassword(pool, -1)
	assert.Error(t, err)
}

// Two long draws colliding would mean the randomness source is broken, not
// that the test is flaky: the collision probability is ~2^-200.
func TestGeneratePasswordNotDeterministic(t *testing.T) {
	pool, err := charset.Build(charset.Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true})
	require.NoError(t, err)

	first, err := GeneratePassword(pool, 32)
	require.NoError(t, err)
	second, err := GeneratePassword(pool, 32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
