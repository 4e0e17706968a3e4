package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var spendCmd = &cobra.Command{
	Use:   "spend <name> <amount>",
	Short: "Take money out of a fund",
	Args:  cobra.ExactArgs(2),
	RunE:  runSpend,
}

func init() {
	rootCmd.AddCommand(spendCmd)
}

func runSpend(_ *cobra.Command, args []string) error {
	name := args[0]
	amount, err := parsePositive(args[1])
	if err != nil {
		return err
	}

	m, cfg, err := loadManager()
	if err != nil {
		return err
	}

	f, err := m.Fund(name)
	if err != nil {
		return err
	}
	f.Spend(amount)

	if err := m.Save(); err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: name, Op: journal.OpSpend, Amount: amount, Balance: f.Amount})

	symbol := cfg.Appearance.CurrencySymbol
	fmt.Printf("  Spent %s from %q, balance %s\n",
		cli.FormatAmount(amount, symbol), name, cli.FormatAmount(f.Amount, symbol))
	if f.Amount < 0 {
		fmt.Printf("  Note: %q is overdrawn\n", name)
	}
	return nil
}
