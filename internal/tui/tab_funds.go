package tui

import (
	"fmt"
	"strings"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/journal"
	"fundwarrior/internal/tui/components"
	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFundsTab(cw, h int) string {
	t := theme.Active

	if len(a.names) == 0 {
		hint := "No funds yet. Run `fund new <name> [amount] [goal]` to create one."
		return components.ContentCard("Funds",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(hint), cw)
	}

	symbol := a.cfg.Appearance.CurrencySymbol

	var totalSaved, totalGoal int64
	for _, name := range a.names {
		f, err := a.mgr.Fund(name)
		if err != nil {
			continue
		}
		totalSaved += f.Amount
		if f.Goal > 0 {
			totalGoal += f.Goal
		}
	}

	overall := 0.0
	if totalGoal > 0 {
		overall = float64(totalSaved) / float64(totalGoal)
		if overall < 0 {
			overall = 0
		}
		if overall > 1 {
			overall = 1
		}
	}

	goalNote := ""
	if remaining := totalGoal - totalSaved; totalGoal > 0 && remaining > 0 {
		goalNote = cli.FormatAmount(remaining, symbol) + " to go"
	} else if totalGoal > 0 {
		goalNote = "all goals met"
	}

	cards := []components.Metric{
		{Label: "Funds", Value: fmt.Sprintf("%d", len(a.names))},
		{Label: "Saved", Value: cli.FormatAmount(totalSaved, symbol)},
		{Label: "Goals", Value: cli.FormatAmount(totalGoal, symbol), Note: goalNote},
		{Label: "Progress", Value: cli.FormatPercent(overall)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	listW := cw / 3
	if listW < 28 {
		listW = 28
	}
	detailW := cw - listW
	if a.isCompactLayout() {
		listW, detailW = cw, cw
	}

	visible := h - 9 // metric cards + list card chrome
	if visible < 4 {
		visible = 4
	}

	listCard := a.renderFundList(listW, visible)
	detailCard := a.renderFundDetail(detailW, h)

	if a.isCompactLayout() {
		b.WriteString(listCard)
		b.WriteString("\n")
		b.WriteString(detailCard)
	} else {
		b.WriteString(components.CardRow([]string{listCard, detailCard}))
	}

	return b.String()
}

func (a App) renderFundList(w, visible int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	overdrawnStyle := lipgloss.NewStyle().Foreground(t.Red)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	offset := 0
	if a.cursor >= visible {
		offset = a.cursor - visible + 1
	}
	end := offset + visible
	if end > len(a.names) {
		end = len(a.names)
	}

	nameW := inner - 6
	if nameW < 8 {
		nameW = 8
	}

	var body strings.Builder
	for i := offset; i < end; i++ {
		name := a.names[i]
		f, err := a.mgr.Fund(name)
		if err != nil {
			continue
		}

		line := fmt.Sprintf(" %-*s %4s", nameW, truncStr(name, nameW), cli.FormatPercent(f.Progress()))
		switch {
		case i == a.cursor:
			body.WriteString(selectedStyle.Render(line))
		case f.Amount < 0:
			body.WriteString(overdrawnStyle.Render(line))
		default:
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	title := fmt.Sprintf("Funds (%d)", len(a.names))
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), w)
}

func (a App) renderFundDetail(w, h int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)
	symbol := a.cfg.Appearance.CurrencySymbol

	if a.cursor >= len(a.names) {
		return ""
	}
	name := a.names[a.cursor]
	f, err := a.mgr.Fund(name)
	if err != nil {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	balStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	if f.Amount < 0 {
		balStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Balance:  "), balStyle.Render(cli.FormatAmount(f.Amount, symbol))))

	if f.Goal > 0 {
		body.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Goal:     "), valueStyle.Render(cli.FormatAmount(f.Goal, symbol))))
		body.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Remaining:"), valueStyle.Render(cli.FormatAmount(f.Remaining(), symbol))))
		body.WriteString("\n")

		barW := inner - 16
		if barW < 10 {
			barW = 10
		}
		body.WriteString(components.GoalBar("Progress", f.Progress(), 9, barW))
		body.WriteString("\n")
	} else {
		body.WriteString(labelStyle.Render("Goal:     ") + " " + mutedStyle.Render("(none)"))
		body.WriteString("\n")
	}

	recent := entriesForFund(a.entries, name, a.detailRows(h))
	if len(recent) > 0 {
		body.WriteString("\n")
		body.WriteString(headerStyle.Render("RECENT ACTIVITY"))
		body.WriteString("\n")
		for _, e := range recent {
			amount, color := opAmount(e, symbol)
			line := fmt.Sprintf("%s  %-12s %10s",
				e.Time.Local().Format("Jan 02 15:04"), e.Op, amount)
			body.WriteString(lipgloss.NewStyle().Foreground(color).Render(truncStr(line, inner)))
			body.WriteString("\n")
		}

		if vals := balanceHistory(recent); len(vals) >= 2 {
			body.WriteString("\n")
			body.WriteString(labelStyle.Render("Balance: "))
			body.WriteString(components.Sparkline(vals, t.Accent))
			body.WriteString("\n")
		}
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[j/k] select  [r] reload  [?] help"))

	return components.ContentCard(name, body.String(), w)
}

// detailRows sizes the recent-activity list to the available height.
func (a App) detailRows(h int) int {
	n := h - 16
	if n < 3 {
		n = 3
	}
	if n > 8 {
		n = 8
	}
	return n
}

// entriesForFund returns the newest entries for one fund, newest first.
func entriesForFund(entries []journal.Entry, name string, limit int) []journal.Entry {
	var out []journal.Entry
	for _, e := range entries {
		if e.Fund != name {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// balanceHistory converts newest-first entries into a chronological
// balance series.
func balanceHistory(entries []journal.Entry) []float64 {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[len(entries)-1-i] = float64(e.Balance)
	}
	return vals
}

func opAmount(e journal.Entry, symbol string) (string, lipgloss.Color) {
	t := theme.Active
	switch e.Op {
	case journal.OpDeposit, journal.OpTransferIn, journal.OpCreate:
		return "+" + cli.FormatAmount(e.Amount, symbol), t.Green
	case journal.OpSpend, journal.OpTransferOut:
		return "-" + cli.FormatAmount(e.Amount, symbol), t.Red
	case journal.OpRemove:
		return cli.FormatAmount(-e.Amount, symbol), t.Red
	default:
		return "", t.TextMuted
	}
}
