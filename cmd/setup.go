package cmd

import (
	"errors"
	"fmt"
	"strings"

	"fundwarrior/internal/config"
	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive first-time setup",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	fundFile := cfg.General.FundFile
	symbol := cfg.Appearance.CurrencySymbol
	themeName := cfg.Appearance.Theme
	journal := cfg.Journal.Enabled

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fund file").
				Description("Where balances live. Leave empty for the default location.").
				Value(&fundFile),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of amounts.").
				CharLimit(8).
				Value(&symbol),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Record a transaction journal?").
				Affirmative("Yes").
				Negative("No").
				Value(&journal),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.General.FundFile = strings.TrimSpace(fundFile)
	if s := strings.TrimSpace(symbol); s != "" {
		cfg.Appearance.CurrencySymbol = s
	}
	cfg.Appearance.Theme = themeName
	cfg.Journal.Enabled = journal

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	return nil
}
