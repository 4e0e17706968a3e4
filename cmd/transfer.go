package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <from> <to> <amount>",
	Short: "Move money between funds",
	Args:  cobra.ExactArgs(3),
	RunE:  runTransfer,
}

func init() {
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(_ *cobra.Command, args []string) error {
	fromName, toName := args[0], args[1]
	amount, err := parsePositive(args[2])
	if err != nil {
		return err
	}

	m, cfg, err := loadManager()
	if err != nil {
		return err
	}

	// Both funds must exist before either side moves.
	from, err := m.Fund(fromName)
	if err != nil {
		return err
	}
	to, err := m.Fund(toName)
	if err != nil {
		return err
	}

	from.Spend(amount)
	to.Deposit(amount)

	if err := m.Save(); err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: fromName, Op: journal.OpTransferOut, Amount: amount, Balance: from.Amount, Note: toName})
	record(rec, journal.Entry{Fund: toName, Op: journal.OpTransferIn, Amount: amount, Balance: to.Amount, Note: fromName})

	symbol := cfg.Appearance.CurrencySymbol
	fmt.Printf("  Moved %s from %q to %q\n", cli.FormatAmount(amount, symbol), fromName, toName)
	fmt.Printf("  %s: %s, %s: %s\n",
		fromName, cli.FormatAmount(from.Amount, symbol),
		toName, cli.FormatAmount(to.Amount, symbol))
	return nil
}
