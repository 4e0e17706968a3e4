package components

import (
	"strings"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// info pinned to the right edge when non-empty.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	hints := " [?]help  [r]eload  [q]uit"
	if info != "" {
		info += " "
	}

	gap := max(0, width-lipgloss.Width(hints)-lipgloss.Width(info))
	line := hints + strings.Repeat(" ", gap) + info

	return lipgloss.NewStyle().Foreground(t.TextMuted).Width(width).Render(line)
}
