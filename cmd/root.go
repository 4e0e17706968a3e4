package cmd

import (
	"fmt"
	"os"
	"strings"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/config"
	"fundwarrior/internal/fund"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var flagFundFile string

var rootCmd = &cobra.Command{
	Use:     "fund",
	Short:   "Personal fund tracker CLI",
	Long:    "Track named funds: deposit, spend, and save toward goals.",
	Version: "0.3.0",
	RunE:    runInfo,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFundFile, "file", "f", "", "Fund file path (overrides config and FUND_FILE)")
}

// loadManager loads the configuration and the fund file it points at.
func loadManager() (*fund.Manager, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	path := flagFundFile
	if path == "" {
		path = config.FundFilePath(cfg)
	}

	m, err := fund.Load(path)
	if err != nil {
		return nil, cfg, err
	}
	return m, cfg, nil
}

// openJournal returns the configured recorder. When journaling is off or
// the database cannot be opened, mutations still go through: the money
// operation must never fail on a journal problem.
func openJournal(cfg config.Config) journal.Recorder {
	if !cfg.Journal.Enabled {
		return journal.NewNoop()
	}
	rec, err := journal.Open(config.JournalPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: journal unavailable: %v\n", err)
		return journal.NewNoop()
	}
	return rec
}

func record(rec journal.Recorder, e journal.Entry) {
	if err := rec.Record(e); err != nil {
		fmt.Fprintf(os.Stderr, "  warning: journal write failed: %v\n", err)
	}
}

// parsePositive parses a decimal amount argument that must be > 0.
func parsePositive(arg string) (int64, error) {
	cents, err := cli.ParseAmount(arg)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %s", arg)
	}
	return cents, nil
}

// parseNonNegative parses a decimal amount argument that must be >= 0.
func parseNonNegative(arg string) (int64, error) {
	cents, err := cli.ParseAmount(arg)
	if err != nil {
		return 0, err
	}
	if cents < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %s", arg)
	}
	return cents, nil
}

// checkFundName rejects names the fund file cannot represent.
func checkFundName(name string) error {
	if name == "" {
		return fmt.Errorf("fund name must not be empty")
	}
	if strings.Contains(name, ":") {
		return fmt.Errorf("fund name must not contain ':'")
	}
	return nil
}
