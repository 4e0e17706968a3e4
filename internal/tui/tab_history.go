package tui

import (
	"fmt"
	"strings"
	"time"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/tui/components"
	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const historyChartDays = 14

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active

	if len(a.entries) == 0 {
		msg := "No journal entries yet. Deposits and spends will show up here."
		if !a.cfg.Journal.Enabled {
			msg = "Journaling is disabled. Run `fund setup` to turn it on."
		}
		return components.ContentCard("History",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(msg), cw)
	}

	chartH := 8
	if h < 22 {
		chartH = 5
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily Activity (%dd)", historyChartDays),
		components.BarChart(a.dailyVolume(), dailyLabels(), components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	visible := h - chartH - 11
	if visible < 3 {
		visible = 3
	}
	b.WriteString(a.renderEntryList(cw, visible))

	return b.String()
}

// dailyVolume sums the cents moved per day over the chart window, in
// dollars, oldest day first.
func (a App) dailyVolume() []float64 {
	vals := make([]float64, historyChartDays)

	idxByDate := make(map[string]int, historyChartDays)
	start := time.Now().AddDate(0, 0, -(historyChartDays - 1))
	for i := 0; i < historyChartDays; i++ {
		idxByDate[start.AddDate(0, 0, i).Format("2006-01-02")] = i
	}

	for _, e := range a.entries {
		i, ok := idxByDate[e.Time.Local().Format("2006-01-02")]
		if !ok {
			continue
		}
		amt := e.Amount
		if amt < 0 {
			amt = -amt
		}
		vals[i] += float64(amt) / 100
	}
	return vals
}

func dailyLabels() []string {
	labels := make([]string, historyChartDays)
	start := time.Now().AddDate(0, 0, -(historyChartDays - 1))
	for i := range labels {
		labels[i] = start.AddDate(0, 0, i).Format("01/02")
	}
	return labels
}

func (a App) renderEntryList(w, visible int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)
	symbol := a.cfg.Appearance.CurrencySymbol

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	offset := a.histOffset
	if offset > len(a.entries)-1 {
		offset = len(a.entries) - 1
	}
	end := offset + visible
	if end > len(a.entries) {
		end = len(a.entries)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(truncStr(
		fmt.Sprintf("%-16s %-12s %-12s %10s %12s", "When", "Fund", "Op", "Amount", "Balance"), inner)))
	body.WriteString("\n")

	for _, e := range a.entries[offset:end] {
		amount, color := opAmount(e, symbol)
		line := fmt.Sprintf("%-16s %-12s %-12s %10s %12s",
			e.Time.Local().Format("2006-01-02 15:04"),
			truncStr(e.Fund, 12),
			e.Op,
			amount,
			cli.FormatAmount(e.Balance, symbol))
		body.WriteString(lipgloss.NewStyle().Foreground(color).Render(truncStr(line, inner)))
		body.WriteString("\n")
	}

	body.WriteString(mutedStyle.Render("[j/k] scroll  [g/G] top/bottom"))

	title := fmt.Sprintf("Entries (%d)", len(a.entries))
	return components.ContentCard(title, body.String(), w)
}
