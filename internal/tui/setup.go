package tui

import (
	"strings"

	"fundwarrior/internal/config"
	"fundwarrior/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects first-run form answers.
type setupValues struct {
	symbol string
	theme  string
}

func newSetupForm(vals *setupValues, width int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of amounts.").
				CharLimit(8).
				Value(&vals.symbol),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
		),
	)
	if width > 0 {
		form = form.WithWidth(width)
	}
	return form
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.setupForm = nil
		a.needSetup = false
	case huh.StateAborted:
		// Keep the defaults for this run; `fund setup` can finish later.
		a.setupForm = nil
		a.needSetup = false
	}
	return a, cmd
}

func (a *App) applySetup() {
	if sym := strings.TrimSpace(a.setupVals.symbol); sym != "" {
		a.cfg.Appearance.CurrencySymbol = sym
	}
	if a.setupVals.theme != "" {
		a.cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}
	a.setupErr = config.Save(a.cfg)
}
