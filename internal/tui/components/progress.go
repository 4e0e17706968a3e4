package components

import (
	"fmt"
	"strings"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalColor maps goal progress to a color: the closer to the goal,
// the greener.
func GoalColor(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Green)
	case pct >= 0.7:
		return string(t.Accent)
	case pct >= 0.4:
		return string(t.Yellow)
	default:
		return string(t.Orange)
	}
}

// ProgressBar renders goal progress as block characters with a trailing
// percentage, colored by GoalColor.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	filled := int(pct * float64(width))
	filled = max(0, min(filled, width))

	color := lipgloss.Color(GoalColor(pct))
	onSurface := lipgloss.NewStyle().Background(t.Surface)

	return onSurface.Foreground(color).Render(strings.Repeat("█", filled)) +
		onSurface.Foreground(t.TextDim).Render(strings.Repeat("░", width-filled)) +
		onSurface.Render(" ") +
		onSurface.Foreground(color).Bold(true).Render(fmt.Sprintf("%.0f%%", pct*100))
}

// GoalBar renders a labeled progress bar for the fund detail pane.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	color := GoalColor(pct)

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	onSurface := lipgloss.NewStyle().Background(t.Surface)
	return onSurface.Foreground(t.TextMuted).Render(fmt.Sprintf("%-*s", labelW, label)) +
		onSurface.Render(" ") +
		bar.ViewAs(pct) +
		onSurface.Render(" ") +
		onSurface.Foreground(lipgloss.Color(color)).Bold(true).Render(fmt.Sprintf("%3.0f%%", pct*100))
}
