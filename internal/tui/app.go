// Package tui implements the interactive fund dashboard.
package tui

import (
	"fmt"
	"strings"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/config"
	"fundwarrior/internal/fund"
	"fundwarrior/internal/journal"
	"fundwarrior/internal/tui/components"
	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 60
	compactWidth     = 80
	maxContentWidth  = 100
	minContentHeight = 5

	// How many journal entries the dashboard loads for the history
	// tab and the per-fund activity pane.
	historyLoadLimit = 200
)

// Tab indices.
const (
	tabFunds = iota
	tabHistory
	tabSettings
	tabCount
)

// dataLoadedMsg carries the result of reading the fund file and journal.
type dataLoadedMsg struct {
	mgr     *fund.Manager
	entries []journal.Entry
	err     error
}

// App is the bubbletea model for the fund dashboard.
type App struct {
	fundFile string
	cfg      config.Config

	width  int
	height int

	loaded  bool
	loadErr error
	spinner spinner.Model

	activeTab int
	showHelp  bool

	mgr     *fund.Manager
	names   []string
	entries []journal.Entry

	cursor     int // funds list selection
	histOffset int // history scroll offset

	settings settingsState

	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
	setupErr  error
}

// NewApp builds the dashboard model for the given fund file.
func NewApp(fundFile string) App {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		fundFile:  fundFile,
		cfg:       cfg,
		spinner:   sp,
		needSetup: !config.Exists(),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, a.loadCmd(), a.spinner.Tick)
}

// loadCmd reads the fund file and recent journal entries off the UI loop.
func (a App) loadCmd() tea.Cmd {
	fundFile := a.fundFile
	cfg := a.cfg

	return func() tea.Msg {
		mgr, err := fund.Load(fundFile)
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		var entries []journal.Entry
		if cfg.Journal.Enabled {
			if rec, err := journal.Open(config.JournalPath(cfg)); err == nil {
				entries, _ = rec.Recent("", historyLoadLimit)
				_ = rec.Close()
			}
		}

		return dataLoadedMsg{mgr: mgr, entries: entries}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(a.formWidth())
		}
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		a.mgr = msg.mgr
		a.entries = msg.entries
		a.names = nil
		if a.mgr != nil {
			a.names = a.mgr.Names()
		}
		if a.cursor > len(a.names)-1 {
			a.cursor = max(0, len(a.names)-1)
		}
		if a.needSetup && a.loadErr == nil && a.setupForm == nil {
			a.setupVals = &setupValues{
				symbol: a.cfg.Appearance.CurrencySymbol,
				theme:  a.cfg.Appearance.Theme,
			}
			a.setupForm = newSetupForm(a.setupVals, a.formWidth())
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Forms and inputs consume their own message types (blink, etc).
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if !a.loaded {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}
	if a.showHelp {
		// Any key dismisses the overlay.
		a.showHelp = false
		return a, nil
	}
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	switch key {
	case "q", "esc":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "r":
		a.loaded = false
		a.loadErr = nil
		return a, tea.Batch(a.loadCmd(), a.spinner.Tick)
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % tabCount
		return a, nil
	case "shift+tab", "left":
		a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		return a, nil
	case "j", "down":
		a.moveSelection(1)
		return a, nil
	case "k", "up":
		a.moveSelection(-1)
		return a, nil
	case "g", "home":
		a.moveSelection(-1 << 30)
		return a, nil
	case "G", "end":
		a.moveSelection(1 << 30)
		return a, nil
	case "enter":
		if a.activeTab == tabSettings {
			return a.settingsStartEdit()
		}
		return a, nil
	}

	if r := []rune(key); len(r) == 1 {
		if idx := components.TabIdxByKey(r[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.setupForm != nil {
		return a, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.moveSelection(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		a.moveSelection(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == 0 {
			if idx := components.TabAtX(msg.X, a.activeTab); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// moveSelection moves the active tab's cursor or scroll offset, clamped.
func (a *App) moveSelection(delta int) {
	clamp := func(v, hi int) int {
		if v < 0 {
			return 0
		}
		if v > hi {
			return hi
		}
		return v
	}

	switch a.activeTab {
	case tabFunds:
		a.cursor = clamp(a.cursor+delta, max(0, len(a.names)-1))
	case tabHistory:
		a.histOffset = clamp(a.histOffset+delta, max(0, len(a.entries)-1))
	case tabSettings:
		a.settings.cursor = clamp(a.settings.cursor+delta, len(settingsFields)-1)
	}
}

func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	t := theme.Active

	if a.width < minTerminalWidth {
		msg := fmt.Sprintf("Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth)
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(msg),
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.viewSetup()
	}
	if a.loadErr != nil {
		return a.viewError()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active

	cw := a.contentWidth()
	contentH := a.height - 3 // tab bar, notice line, status bar
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	default:
		content = a.renderFundsTab(cw, contentH)
	}
	content = truncateHeight(content, contentH)
	content = padHeight(content, contentH)
	content = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	notice := ""
	if a.setupErr != nil {
		notice = lipgloss.NewStyle().Foreground(t.Orange).
			Render(fmt.Sprintf(" Could not save config: %v", a.setupErr))
	}

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n")
	b.WriteString(notice)
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.width, a.statusInfo()))

	return fillLinesWithBackground(b.String(), a.width, t.Background)
}

func (a App) viewLoading() string {
	t := theme.Active

	body := a.spinner.View() + " Reading funds..." + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(a.fundFile)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewSetup() string {
	t := theme.Active

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("Welcome to fund")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("A couple of questions before the dashboard opens.")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Padding(1, 2).
		Render(title + "\n" + sub + "\n\n" + a.setupForm.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	title := lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("Could not load funds")
	body := title + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.loadErr.Error()) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("[r] retry  [q] quit")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"f / h / s", "jump to Funds, History, or Settings"},
		{"tab / arrows", "cycle tabs"},
		{"j / k", "move selection, scroll"},
		{"g / G", "jump to top / bottom"},
		{"enter", "edit the selected setting"},
		{"r", "reload the fund file"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Keys"))
	body.WriteString("\n\n")
	for _, r := range rows {
		body.WriteString(keyStyle.Render(fmt.Sprintf("  %-14s", r.key)))
		body.WriteString(descStyle.Render(r.desc))
		body.WriteString("\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Padding(1, 2).
		Render(strings.TrimRight(body.String(), "\n"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusInfo() string {
	if a.mgr == nil {
		return ""
	}
	var total int64
	for _, name := range a.names {
		if f, err := a.mgr.Fund(name); err == nil {
			total += f.Amount
		}
	}
	return fmt.Sprintf("%d funds, %s saved",
		len(a.names), cli.FormatAmount(total, a.cfg.Appearance.CurrencySymbol))
}

func (a App) contentWidth() int {
	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > 60 {
		w = 60
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (a App) isCompactLayout() bool {
	return a.width < compactWidth
}

func truncStr(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}

func truncateHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

func fillLinesWithBackground(s string, width int, bg lipgloss.Color) string {
	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := width - lipgloss.Width(line)
		if pad > 0 {
			lines[i] = line + fill.Render(strings.Repeat(" ", pad))
		}
	}
	return strings.Join(lines, "\n")
}
