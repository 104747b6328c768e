/* cmd/root.go */

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/keysmith/keysmith/cmd/generate"
	"github.com/keysmith/keysmith/cmd/inspect"
	"github.com/keysmith/keysmith/cmd/tui"

	"github.com/keysmith/keysmith/pkg/keysmith_err"
	"github.com/keysmith/keysmith/pkg/logger"
)

// RootCmd is the base command for keysmith.
var RootCmd = &cobra.Command{
	Use:   "keysmith",
	Short: "Generate and audit passwords from a secure random source",
	Long: `Keysmith generates passwords from the operating system's cryptographic
random source and scores them with an entropy-based strength model.

Passwords are produced for one-time display or copy; nothing is ever stored
or transmitted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		generate.GenerateCmd,
		inspect.InspectCmd,
		tui.TuiCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if keysmith_err.IsExpectedUserError(err) {
			logger.L().Warn("Command completed with user error", zap.Error(err))
		} else {
			logger.L().Error("Command execution error", zap.Error(err))
		}
		os.Exit(keysmith_err.ExitCode(err))
	}
}
