// cmd/tui/tui.go

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/keysmith/keysmith/pkg/config"
	"github.com/keysmith/keysmith/pkg/keysmith_cli"
	"github.com/keysmith/keysmith/pkg/keysmith_io"
	tuipkg "github.com/keysmith/keysmith/pkg/tui"
)

// TuiCmd runs the interactive generator.
var TuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive password generator",
	Long: `Full-screen interactive mode: toggle character classes, adjust length,
regenerate live, and copy the result to the clipboard.`,
	Args: cobra.NoArgs,
	RunE: keysmith_cli.Wrap(runTui),
}

func runTui(rc *keysmith_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	program := tea.NewProgram(tuipkg.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return cerr.Wrap(err, "interactive mode failed")
	}
	return nil
}
