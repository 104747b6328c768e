// pkg/charset/charset.go

package charset

import (
	"strings"

	"github.com/keysmith/keysmith/pkg/keysmith_err"
)

// Canonical character classes. ASCII only; Symbols is the full 32-character
// ASCII punctuation set, so all four classes together give a pool of 94.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Ambiguous characters stripped by the exclude-ambiguous option: look-alikes
// plus the bracket and slash variants that are easy to misread or mistype.
const Ambiguous = "0O1lI{}[]()/\\|`~"

// Options selects which character classes a pool is built from.
type Options struct {
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// Pool is an ordered, deduplicated set of candidate characters. Order never
// affects generation semantics, only index mapping, but it is deterministic
// for a given Options value.
type Pool struct {
	chars string
}

// Build assembles the pool for opts. It fails with a typed error when no
// class is selected, or when ambiguous filtering leaves nothing behind.
func Build(opts Options) (Pool, error) {
	if !opts.Lowercase && !opts.Uppercase && !opts.Digits && !opts.Symbols {
		return Pool{}, keysmith_err.ErrNoCharacterTypesSelected
	}

	var sb strings.Builder
	for _, class := range []struct {
		enabled bool
		chars   string
	}{
		{opts.Lowercase, Lowercase},
		{opts.Uppercase, Uppercase},
		{opts.Digits, Digits},
		{opts.Symbols, Symbols},
	} {
		if class.enabled {
			sb.WriteString(class.chars)
		}
	}

	candidates := sb.String()

	var out []byte
	seen := make(map[byte]struct{}, len(candidates))
	for i := 0; i < len(candidates); i++ {
		c := candidates[i]
		if opts.ExcludeAmbiguous && strings.IndexByte(Ambiguous, c) >= 0 {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	if len(out) == 0 {
		return Pool{}, keysmith_err.ErrEmptyPoolAfterFiltering
	}
	return Pool{chars: string(out)}, nil
}

// Size returns the number of characters in the pool.
func (p Pool) Size() int {
	return len(p.chars)
}

// Char returns the character at index i.
func (p Pool) Char(i int) byte {
	return p.chars[i]
}

// Contains reports whether c is a member of the pool.
func (p Pool) Contains(c byte) bool {
	return strings.IndexByte(p.chars, c) >= 0
}

// String returns the pool characters in index order.
func (p Pool) String() string {
	return p.chars
}
