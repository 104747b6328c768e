// pkg/tui/model.go
//
// Interactive generator: class toggles, length keys, live regeneration and
// clipboard copy. Debounce and clipboard live here in the presentation
// layer; the core stays pure underneath.

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keysmith/keysmith/pkg/display"
	"github.com/keysmith/keysmith/pkg/password"
)

const meterCeiling = 150.0

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	pwStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	toggleOn    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	toggleOff   = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the bubbletea model for the interactive generator.
type Model struct {
	cfg    password.Config
	result password.Result
	err    error
	meter  progress.Model
	copied bool
}

// New builds the model; the first password is generated by Init.
func New(cfg password.Config) Model {
	return Model{
		cfg:   cfg,
		meter: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
}

type generatedMsg struct {
	result password.Result
	err    error
}

func (m Model) Init() tea.Cmd {
	return m.regenerate()
}

// regenerate runs the pipeline off the update loop. Key repeat on length
// keys is naturally coalesced: each generation is microseconds, and stale
// results are simply overwritten by the next message.
func (m Model) regenerate() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		result, err := password.Generate(cfg)
		return generatedMsg{result: result, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ":
			m.copied = false
			return m, m.regenerate()
		case "+", "=", "right":
			if m.cfg.Length < password.MaxLength {
				m.cfg.Length++
			}
			m.copied = false
			return m, m.regenerate()
		case "-", "_", "left":
			if m.cfg.Length > password.MinLength {
				m.cfg.Length--
			}
			m.copied = false
			return m, m.regenerate()
		case "u":
			m.cfg.IncludeUppercase = !m.cfg.IncludeUppercase
			m.copied = false
			return m, m.regenerate()
		case "l":
			m.cfg.IncludeLowercase = !m.cfg.IncludeLowercase
			m.copied = false
			return m, m.regenerate()
		case "n":
			m.cfg.IncludeNumbers = !m.cfg.IncludeNumbers
			m.copied = false
			return m, m.regenerate()
		case "s":
			m.cfg.IncludeSymbols = !m.cfg.IncludeSymbols
			m.copied = false
			return m, m.regenerate()
		case "a":
			m.cfg.ExcludeAmbiguous = !m.cfg.ExcludeAmbiguous
			m.copied = false
			return m, m.regenerate()
		case "c":
			if m.result.Password != "" {
				if err := clipboard.WriteAll(m.result.Password); err == nil {
					m.copied = true
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("keysmith") + "\n\n")

	if m.err != nil {
		sb.WriteString(errStyle.Render("✗ "+m.err.Error()) + "\n\n")
	} else if m.result.Password != "" {
		sb.WriteString(pwStyle.Render(m.result.Password) + "\n\n")

		report := m.result.Report
		ratio := report.AdjustedEntropyBits / meterCeiling
		if ratio > 1 {
			ratio = 1
		}
		sb.WriteString(m.meter.ViewAs(ratio) + " " +
			display.TierStyle(report.Tier).Render(report.Tier.String()) + "\n")
		sb.WriteString(helpStyle.Render(fmt.Sprintf("%.1f bits · cracked in %s · pool %d",
			report.AdjustedEntropyBits, report.CrackTime, m.result.Pool.Size())) + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("length %s  %d\n", helpStyle.Render("(-/+)"), m.cfg.Length))
	sb.WriteString(toggle("u", "uppercase", m.cfg.IncludeUppercase) + "  ")
	sb.WriteString(toggle("l", "lowercase", m.cfg.IncludeLowercase) + "  ")
	sb.WriteString(toggle("n", "numbers", m.cfg.IncludeNumbers) + "  ")
	sb.WriteString(toggle("s", "symbols", m.cfg.IncludeSymbols) + "  ")
	sb.WriteString(toggle("a", "no look-alikes", m.cfg.ExcludeAmbiguous) + "\n\n")

	if m.copied {
		sb.WriteString(noticeStyle.Render("✓ copied to clipboard") + "\n")
	}
	sb.WriteString(helpStyle.Render("r regenerate · c copy · q quit") + "\n")

	return sb.String()
}

func toggle(key, label string, on bool) string {
	text := fmt.Sprintf("[%s] %s", key, label)
	if on {
		return toggleOn.Render("☑ " + text)
	}
	return toggleOff.Render("☐ " + text)
}
