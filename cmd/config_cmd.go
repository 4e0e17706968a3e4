// Package cmd implements the fund CLI commands.
package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source := "built-in defaults (no config file yet)"
	if config.Exists() {
		source = config.ConfigPath()
	}

	journal := "off"
	if cfg.Journal.Enabled {
		journal = "on, " + config.JournalPath(cfg)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Configuration",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Config file", source},
			{"Fund file", config.FundFilePath(cfg)},
			{"---"},
			{"Journal", journal},
			{"---"},
			{"Currency symbol", cfg.Appearance.CurrencySymbol},
			{"Theme", cfg.Appearance.Theme},
		},
	}))
	fmt.Println()
	fmt.Println("  Run `fund setup` to change these.")
	return nil
}
