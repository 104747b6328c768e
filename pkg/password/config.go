// pkg/password/config.go

package password

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/keysmith/keysmith/pkg/charset"
	"github.com/keysmith/keysmith/pkg/keysmith_err"
	"github.com/keysmith/keysmith/pkg/strength"
)

// Length bounds for a single generated password.
const (
	MinLength = 4
	MaxLength = 128

	DefaultLength = 12
)

var validate = validator.New()

// Config describes one generation request.
type Config struct {
	Length           int     `mapstructure:"length" validate:"min=4,max=128"`
	IncludeUppercase bool    `mapstructure:"include_uppercase"`
	IncludeLowercase bool    `mapstructure:"include_lowercase"`
	IncludeNumbers   bool    `mapstructure:"include_numbers"`
	IncludeSymbols   bool    `mapstructure:"include_symbols"`
	ExcludeAmbiguous bool    `mapstructure:"exclude_ambiguous"`
	AttackRate       float64 `mapstructure:"attack_rate" validate:"gt=0"`
}

// DefaultConfig returns the defaults: 12 characters, every class enabled,
// ambiguous characters kept, reference attack rate.
func DefaultConfig() Config {
	return Config{
		Length:           DefaultLength,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
		AttackRate:       strength.DefaultAttackRate,
	}
}

// Validate checks the config and returns a typed failure, never a generic
// one. Violations are validation failures, not generation attempts.
func (c Config) Validate() error {
	if !c.IncludeUppercase && !c.IncludeLowercase && !c.IncludeNumbers && !c.IncludeSymbols {
		return cerr.WithHint(keysmith_err.ErrNoCharacterTypesSelected,
			"enable at least one of uppercase, lowercase, numbers, symbols")
	}
	if err := validate.Struct(c); err != nil {
		if c.Length < MinLength || c.Length > MaxLength {
			return cerr.WithHintf(
				cerr.WithSecondaryError(keysmith_err.ErrInvalidLength, err),
				"length must be between %d and %d, got %d", MinLength, MaxLength, c.Length)
		}
		return cerr.Wrap(err, "invalid generation config")
	}
	return nil
}

// CharsetOptions maps the inclusion flags onto pool-builder options.
func (c Config) CharsetOptions() charset.Options {
	return charset.Options{
		Lowercase:        c.IncludeLowercase,
		Uppercase:        c.IncludeUppercase,
		Digits:           c.IncludeNumbers,
		Symbols:          c.IncludeSymbols,
		ExcludeAmbiguous: c.ExcludeAmbiguous,
	}
}
