// pkg/password/password.go

package password

import (
	"github.com/keysmith/keysmith/pkg/charset"
	"github.com/keysmith/keysmith/pkg/crypto"
	"github.com/keysmith/keysmith/pkg/strength"
)

// Result couples a freshly generated password with the pool it was drawn
// from and its strength report. Nothing is retained after the caller is
// done with it.
type Result struct {
	Password string
	Pool     charset.Pool
	Report   strength.Report
}

// Generate runs the full pipeline: validate config, build the pool, draw the
// password, score it. Every failure is a typed error from Validate, Build or
// GeneratePassword; there are no degraded-but-succeeding paths.
//
// Re-evaluating the returned password against Pool.Size() reproduces Report
// exactly: the evaluator is pure and is handed nothing the caller does not
// also have.
func Generate(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	pool, err := charset.Build(cfg.CharsetOptions())
	if err != nil {
		return Result{}, err
	}

	pw, err := crypto.GeneratePassword(pool, cfg.Length)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Password: pw,
		Pool:     pool,
		Report:   strength.EvaluateWithRate(pw, pool.Size(), cfg.AttackRate),
	}, nil
}
