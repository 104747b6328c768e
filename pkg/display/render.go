// pkg/display/render.go

package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keysmith/keysmith/pkg/strength"
)

const meterWidth = 30

// meterCeiling is the entropy at which the meter reads full. Scores above it
// exist (the top tier is unbounded) but render the same full bar.
const meterCeiling = 150.0

var (
	labelStyle = lipgloss.NewStyle().Faint(true).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
	recStyle   = lipgloss.NewStyle().Faint(true).PaddingLeft(2)

	tierColors = map[strength.Tier]lipgloss.Color{
		strength.VeryWeak:  lipgloss.Color("9"),   // red
		strength.Weak:      lipgloss.Color("208"), // orange
		strength.Fair:      lipgloss.Color("11"),  // yellow
		strength.Good:      lipgloss.Color("10"),  // green
		strength.Strong:    lipgloss.Color("14"),  // cyan
		strength.Excellent: lipgloss.Color("13"),  // magenta
	}
)

// TierStyle returns the colour style for a tier.
func TierStyle(t strength.Tier) lipgloss.Style {
	color, ok := tierColors[t]
	if !ok {
		color = lipgloss.Color("7")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Meter renders a fixed-width strength bar for the given adjusted entropy.
func Meter(bits float64) string {
	ratio := bits / meterCeiling
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * meterWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled) + "]"
}

// RenderReport formats a strength report for terminal display.
func RenderReport(report strength.Report) string {
	var sb strings.Builder

	tier := TierStyle(report.Tier)
	sb.WriteString(labelStyle.Render("Strength") + tier.Render(fmt.Sprintf("%s %s", Meter(report.AdjustedEntropyBits), report.Tier)) + "\n")
	sb.WriteString(labelStyle.Render("Entropy") + valueStyle.Render(fmt.Sprintf("%.1f bits", report.AdjustedEntropyBits)) +
		lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(" (%.1f raw)", report.RawEntropyBits)) + "\n")
	sb.WriteString(labelStyle.Render("Crack time") + valueStyle.Render(report.CrackTime) + "\n")

	if report.CommonPassword {
		sb.WriteString(TierStyle(strength.VeryWeak).Render("⚠ known common password") + "\n")
	}
	for _, rec := range report.Recommendations {
		sb.WriteString(recStyle.Render("• "+rec) + "\n")
	}

	return sb.String()
}
