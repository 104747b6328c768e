// pkg/charset/charset_test.go

package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysmith/keysmith/pkg/keysmith_err"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantSize int
		want     string
	}{
		{
			name:     "all classes",
			opts:     Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true},
			wantSize: 94,
		},
		{
			name:     "lowercase only",
			opts:     Options{Lowercase: true},
			wantSize: 26,
			want:     Lowercase,
		},
		{
			name:     "lowercase then digits keeps class order",
			opts:     Options{Lowercase: true, Digits: true},
			wantSize: 36,
			want:     Lowercase + Digits,
		},
		{
			name:     "all classes without ambiguous",
			opts:     Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true, ExcludeAmbiguous: true},
			wantSize: 78,
		},
		{
			name:     "digits without ambiguous drops 0 and 1",
			opts:     Options{Digits: true, ExcludeAmbiguous: true},
			wantSize: 8,
			want:     "23456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := Build(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, pool.Size())
			if tt.want != "" {
				assert.Equal(t, tt.want, pool.String())
			}
		})
	}
}

func TestBuildNoClassesSelected(t *testing.T) {
	_, err := Build(Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, keysmith_err.ErrNoCharacterTypesSelected)
}

func TestBuildDeterministic(t *testing.T) {
	opts := Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}

	first, err := Build(opts)
	require.NoError(t, err)
	second, err := Build(opts)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestBuildNoDuplicates(t *testing.T) {
	pool, err := Build(Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true})
	require.NoError(t, err)

	seen := make(map[byte]bool)
	for i := 0; i < pool.Size(); i++ {
		c := pool.Char(i)
		assert.False(t, seen[c], "duplicate character %q in pool", string(c))
		seen[c] = true
	}
}

func TestBuildExcludesAllAmbiguous(t *testing.T) {
	pool, err := Build(Options{Lowercase: true, Uppercase: true, Digits: true, Symbols: true, ExcludeAmbiguous: true})
	require.NoError(t, err)

	for i := 0; i < len(Ambiguous); i++ {
		assert.False(t, pool.Contains(Ambiguous[i]),
			"ambiguous character %q present in filtered pool", string(Ambiguous[i]))
	}
}

func TestSymbolsClassHas32Characters(t *testing.T) {
	assert.Len(t, Symbols, 32)
	assert.Len(t, Ambiguous, 16)
}

func TestPoolContains(t *testing.T) {
	pool, err := Build(Options{Lowercase: true})
	require.NoError(t, err)

	assert.True(t, pool.Contains('a'))
	assert.False(t, pool.Contains('A'))
	assert.False(t, strings.Contains(pool.String(), "0"))
}
