package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <name> <amount>",
	Short: "Add money to a fund",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeposit,
}

func init() {
	rootCmd.AddCommand(depositCmd)
}

func runDeposit(_ *cobra.Command, args []string) error {
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
	f.Deposit(amount)

	if err := m.Save(); err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: name, Op: journal.OpDeposit, Amount: amount, Balance: f.Amount})

	symbol := cfg.Appearance.CurrencySymbol
	fmt.Printf("  Deposited %s into %q, balance %s\n",
		cli.FormatAmount(amount, symbol), name, cli.FormatAmount(f.Amount, symbol))
	return nil
}
