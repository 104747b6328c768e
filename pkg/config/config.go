// pkg/config/config.go
//
// Optional defaults file plus environment layering for generation settings.
// Precedence: command flags > KEYSMITH_* env > config file > built-ins; the
// flag layer is applied by cmd/, this package handles the rest.

package config

import (
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/keysmith/keysmith/pkg/password"
)

// Load reads the defaults file (~/.config/keysmith/config.yaml if present)
// and the KEYSMITH_* environment, and returns the resulting generation
// config. A missing file is not an error; a malformed one is.
func Load() (password.Config, error) {
	v := viper.New()

	defaults := password.DefaultConfig()
	v.SetDefault("length", defaults.Length)
	v.SetDefault("include_uppercase", defaults.IncludeUppercase)
	v.SetDefault("include_lowercase", defaults.IncludeLowercase)
	v.SetDefault("include_numbers", defaults.IncludeNumbers)
	v.SetDefault("include_symbols", defaults.IncludeSymbols)
	v.SetDefault("exclude_ambiguous", defaults.ExcludeAmbiguous)
	v.SetDefault("attack_rate", defaults.AttackRate)

	v.SetEnvPrefix("KEYSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			return password.Config{}, cerr.Wrap(err, "failed to read config file")
		}
	}

	var cfg password.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return password.Config{}, cerr.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "keysmith"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".config", "keysmith"), nil
}
