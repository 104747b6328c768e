// cmd/inspect/inspect.go

package inspect

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keysmith/keysmith/pkg/display"
	"github.com/keysmith/keysmith/pkg/keysmith_cli"
	"github.com/keysmith/keysmith/pkg/keysmith_err"
	"github.com/keysmith/keysmith/pkg/keysmith_io"
	"github.com/keysmith/keysmith/pkg/strength"
)

var (
	poolSize   int
	attackRate float64
	jsonOut    bool
)

// InspectCmd scores an existing password without generating anything.
var InspectCmd = &cobra.Command{
	Use:   "inspect [password]",
	Short: "Score an existing password",
	Long: `Scores a password you already have. Pass it as an argument, or omit it
to be prompted without echo.

The pool size defaults to one inferred from the character classes the
password uses; pass --pool-size when the generating pool is known. The
password itself is never logged or echoed back.`,
	Args: cobra.MaximumNArgs(1),
	RunE: keysmith_cli.Wrap(runInspect),
}

func init() {
	flags := InspectCmd.Flags()
	flags.IntVar(&poolSize, "pool-size", 0, "Known character pool size (0 = infer from the password)")
	flags.Float64Var(&attackRate, "attack-rate", strength.DefaultAttackRate, "Attacker guess rate for crack-time estimates (guesses/sec)")
	flags.BoolVar(&jsonOut, "json", false, "Emit JSON")
}

func runInspect(rc *keysmith_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	var pw string
	if len(args) == 1 {
		pw = args[0]
	} else {
		typed, err := keysmith_io.PromptSecurePassword(rc, "Password to score: ")
		if err != nil {
			return keysmith_err.NewExpectedError(err)
		}
		pw = typed
	}

	size := poolSize
	if size <= 0 {
		size = strength.InferPoolSize(pw)
		rc.Log.Debug("Inferred pool size", zap.Int("pool_size", size))
	}

	report := strength.EvaluateWithRate(pw, size, attackRate)
	rc.Attributes["tier"] = report.Tier.String()

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			PoolSize int             `json:"pool_size"`
			Report   strength.Report `json:"report"`
		}{PoolSize: size, Report: report})
	}

	fmt.Print(display.RenderReport(report))
	return nil
}
