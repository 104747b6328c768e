// cmd/generate/generate.go

package generate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keysmith/keysmith/pkg/config"
	"github.com/keysmith/keysmith/pkg/display"
	"github.com/keysmith/keysmith/pkg/keysmith_cli"
	"github.com/keysmith/keysmith/pkg/keysmith_err"
	"github.com/keysmith/keysmith/pkg/keysmith_io"
	"github.com/keysmith/keysmith/pkg/password"
	"github.com/keysmith/keysmith/pkg/strength"
)

var (
	length           int
	noUpper          bool
	noLower          bool
	noDigits         bool
	noSymbols        bool
	excludeAmbiguous bool
	attackRate       float64
	count            int
	copyToClipboard  bool
	quiet            bool
	jsonOut          bool
)

// GenerateCmd produces one or more passwords and their strength reports.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a password and score its strength",
	Long: `Generates a password from the configured character classes using the
OS cryptographic random source, then scores it: entropy from length and pool
size, penalties for monotonic sequences and keyboard patterns, a hard cap
for known common passwords, and a brute-force crack-time estimate.`,
	Args: cobra.NoArgs,
	RunE: keysmith_cli.Wrap(runGenerate),
}

func init() {
	flags := GenerateCmd.Flags()
	flags.IntVarP(&length, "length", "l", password.DefaultLength, "Password length (4-128)")
	flags.BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	flags.BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	flags.BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	flags.BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	flags.BoolVarP(&excludeAmbiguous, "exclude-ambiguous", "x", false, "Exclude look-alike characters (0O1lI and brackets)")
	flags.Float64Var(&attackRate, "attack-rate", strength.DefaultAttackRate, "Attacker guess rate for crack-time estimates (guesses/sec)")
	flags.IntVarP(&count, "count", "n", 1, "Number of independent passwords to generate")
	flags.BoolVar(&copyToClipboard, "copy", false, "Copy the password to the clipboard")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Print only the password")
	flags.BoolVar(&jsonOut, "json", false, "Emit JSON")
}

type jsonResult struct {
	Password string          `json:"password"`
	PoolSize int             `json:"pool_size"`
	Report   strength.Report `json:"report"`
}

func runGenerate(rc *keysmith_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if count < 1 {
		return keysmith_err.NewExpectedError(
			fmt.Errorf("count must be at least 1, got %d", count))
	}

	rc.Log.Debug("Generating",
		zap.Int("length", cfg.Length),
		zap.Int("count", count),
		zap.Bool("exclude_ambiguous", cfg.ExcludeAmbiguous))

	results := make([]password.Result, 0, count)
	for i := 0; i < count; i++ {
		result, err := password.Generate(cfg)
		if err != nil {
			if keysmith_err.Classify(err) == keysmith_err.CategoryValidation {
				return keysmith_err.NewExpectedError(err)
			}
			return err
		}
		results = append(results, result)
	}

	rc.Attributes["pool_size"] = fmt.Sprintf("%d", results[0].Pool.Size())
	rc.Attributes["tier"] = results[0].Report.Tier.String()

	if copyToClipboard {
		if err := clipboard.WriteAll(results[0].Password); err != nil {
			rc.Log.Warn("Clipboard copy failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "✓ copied to clipboard")
		}
	}

	return render(results)
}

// buildConfig layers command flags over the file/env config. Flags only
// override what was explicitly set.
func buildConfig(cmd *cobra.Command) (password.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return password.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("no-upper") {
		cfg.IncludeUppercase = !noUpper
	}
	if flags.Changed("no-lower") {
		cfg.IncludeLowercase = !noLower
	}
	if flags.Changed("no-digits") {
		cfg.IncludeNumbers = !noDigits
	}
	if flags.Changed("no-symbols") {
		cfg.IncludeSymbols = !noSymbols
	}
	if flags.Changed("exclude-ambiguous") {
		cfg.ExcludeAmbiguous = excludeAmbiguous
	}
	if flags.Changed("attack-rate") {
		cfg.AttackRate = attackRate
	}
	return cfg, nil
}

func render(results []password.Result) error {
	if jsonOut {
		out := make([]jsonResult, len(results))
		for i, r := range results {
			out[i] = jsonResult{Password: r.Password, PoolSize: r.Pool.Size(), Report: r.Report}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(out) == 1 {
			return enc.Encode(out[0])
		}
		return enc.Encode(out)
	}

	for _, r := range results {
		fmt.Println(r.Password)
	}
	if !quiet && len(results) == 1 {
		fmt.Print(display.RenderReport(results[0].Report))
	}
	return nil
}
