package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a fund",
	Long:  "Delete a fund from the fund file. Its journal history is kept.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	name := args[0]

	m, cfg, err := loadManager()
	if err != nil {
		return err
	}

	f, err := m.Remove(name)
	if err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: name, Op: journal.OpRemove, Amount: f.Amount, Balance: 0})

	symbol := cfg.Appearance.CurrencySymbol
	fmt.Printf("  Removed %q (balance was %s)\n", name, cli.FormatAmount(f.Amount, symbol))
	return nil
}
