package cmd

import (
	"fmt"

	"fundwarrior/internal/config"
	"fundwarrior/internal/tui"
	"fundwarrior/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive fund dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor: the dashboard depends on background styling that
	// lipgloss drops under a colorless auto-detected profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	fundFile := flagFundFile
	if fundFile == "" {
		fundFile = config.FundFilePath(cfg)
	}

	p := tea.NewProgram(tui.NewApp(fundFile), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
