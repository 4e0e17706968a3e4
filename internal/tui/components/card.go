// Package components provides reusable widgets for the fund dashboard.
package components

import (
	"strings"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is a label/value pair shown in a MetricCard, with an optional
// note line under the value.
type Metric struct {
	Label string
	Value string
	Note  string
}

// cardFrame is the rounded border style shared by all cards. outerWidth
// includes the border columns.
func cardFrame(outerWidth int) lipgloss.Style {
	w := outerWidth - 2
	if w < 10 {
		w = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(w).
		Padding(0, 1)
}

// MetricCard renders one metric in a bordered card of outerWidth columns.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value),
	}
	if m.Note != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note))
	}
	return cardFrame(outerWidth).Render(strings.Join(lines, "\n"))
}

// MetricCardRow lays out cards side by side, their widths summing to
// exactly totalWidth.
func MetricCardRow(cards []Metric, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, m := range cards {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders body in a bordered card with an optional bold title.
func ContentCard(title, body string, outerWidth int) string {
	if title != "" {
		styled := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true).Render(title)
		body = styled + "\n" + body
	}
	return cardFrame(outerWidth).Render(body)
}

// CardRow joins rendered cards horizontally, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// LayoutRow splits totalWidth into n column widths that sum to exactly
// totalWidth. When it doesn't divide evenly the extra columns land on
// the rightmost items.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	rest := totalWidth
	for i := range widths {
		widths[i] = rest / (n - i)
		rest -= widths[i]
	}
	return widths
}

// CardInnerWidth is the text width available inside a card of outerWidth
// columns, with border and padding removed.
func CardInnerWidth(outerWidth int) int {
	if w := outerWidth - 4; w >= 10 {
		return w
	}
	return 10
}
