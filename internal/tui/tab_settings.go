package tui

import (
	"fmt"
	"strconv"
	"strings"

	"fundwarrior/internal/config"
	"fundwarrior/internal/tui/components"
	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsField describes one editable config entry: how to show its
// current value and how to fold an entered value back into the config.
type settingsField struct {
	label       string
	placeholder string
	current     func(cfg config.Config) string
	apply       func(cfg *config.Config, val string)
}

var settingsFields = []settingsField{
	{
		label:       "Currency symbol",
		placeholder: "$",
		current:     func(cfg config.Config) string { return cfg.Appearance.CurrencySymbol },
		apply: func(cfg *config.Config, val string) {
			if val != "" {
				cfg.Appearance.CurrencySymbol = val
			}
		},
	},
	{
		label:       "Theme",
		placeholder: strings.Join(theme.Names(), ", "),
		current:     func(cfg config.Config) string { return cfg.Appearance.Theme },
		apply: func(cfg *config.Config, val string) {
			for _, name := range theme.Names() {
				if name == val {
					cfg.Appearance.Theme = val
					theme.SetActive(val)
					return
				}
			}
		},
	},
	{
		label:       "Journal",
		placeholder: "on or off",
		current: func(cfg config.Config) string {
			if cfg.Journal.Enabled {
				return "on"
			}
			return "off"
		},
		apply: func(cfg *config.Config, val string) {
			switch val {
			case "on", "true", "1", "yes":
				cfg.Journal.Enabled = true
			case "off", "false", "0", "no":
				cfg.Journal.Enabled = false
			}
		},
	},
}

// settingsState tracks the cursor and edit buffer for the settings tab.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	notice  string // outcome of the last save, cleared on next edit
	failed  bool
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	f := settingsFields[a.settings.cursor]

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Placeholder = f.placeholder
	ti.SetValue(f.current(a.cfg))
	ti.Focus()

	a.settings.editing = true
	a.settings.notice = ""
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsApply()
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsApply folds the edit buffer into the config and persists it.
func (a *App) settingsApply() {
	val := strings.TrimSpace(a.settings.input.Value())
	settingsFields[a.settings.cursor].apply(&a.cfg, val)
	a.settings.editing = false

	if err := config.Save(a.cfg); err != nil {
		a.settings.notice = "Save failed: " + err.Error()
		a.settings.failed = true
		return
	}
	a.settings.notice = "Saved"
	a.settings.failed = false
}

const settingsLabelW = 17

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hover := lipgloss.NewStyle().Background(t.SurfaceHover)

	rows := make([]string, 0, len(settingsFields)+4)
	for i, f := range settingsFields {
		name := fmt.Sprintf("%-*s ", settingsLabelW, f.label+":")

		switch {
		case a.settings.editing && i == a.settings.cursor:
			rows = append(rows,
				hover.Foreground(t.AccentBright).Render("▸ ")+
					lipgloss.NewStyle().Foreground(t.AccentBright).Render(name)+
					a.settings.input.View())

		case i == a.settings.cursor:
			row := hover.Foreground(t.AccentBright).Render("▸ ") +
				hover.Foreground(t.Accent).Bold(true).Render(name) +
				hover.Foreground(t.TextPrimary).Bold(true).Render(f.current(a.cfg))
			if pad := components.CardInnerWidth(cw) - lipgloss.Width(row); pad > 0 {
				row += hover.Render(strings.Repeat(" ", pad))
			}
			rows = append(rows, row)

		default:
			rows = append(rows, "  "+labelStyle.Render(name)+valueStyle.Render(f.current(a.cfg)))
		}
	}

	if a.settings.notice != "" {
		color := t.Green
		if a.settings.failed {
			color = t.Orange
		}
		rows = append(rows, "", lipgloss.NewStyle().Foreground(color).Render(a.settings.notice))
	}
	rows = append(rows, "", labelStyle.Render("[j/k] move  [Enter] edit  [Esc] cancel"))

	info := [][2]string{
		{"Fund file", a.fundFile},
		{"Config file", config.ConfigPath()},
		{"Journal", config.JournalPath(a.cfg)},
		{"Funds", strconv.Itoa(len(a.names))},
	}
	infoRows := make([]string, len(info))
	for i, kv := range info {
		infoRows[i] = labelStyle.Render(fmt.Sprintf("%-12s ", kv[0]+":")) + valueStyle.Render(kv[1])
	}

	return components.ContentCard("Settings", strings.Join(rows, "\n"), cw) +
		"\n" +
		components.ContentCard("General", strings.Join(infoRows, "\n"), cw)
}
