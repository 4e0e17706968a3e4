package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/fund"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name> [amount] [goal]",
	Short: "Create a new fund",
	Long:  "Create a fund with an optional starting balance and savings goal, in dollars.",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	name := args[0]
	if err := checkFundName(name); err != nil {
		return err
	}

	var amount, goal int64
	var err error
	if len(args) > 1 {
		amount, err = parseNonNegative(args[1])
		if err != nil {
			return err
		}
	}
	if len(args) > 2 {
		goal, err = parseNonNegative(args[2])
		if err != nil {
			return err
		}
	}

	m, cfg, err := loadManager()
	if err != nil {
		return err
	}

	if err := m.AddFund(name, fund.New(amount, goal)); err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: name, Op: journal.OpCreate, Amount: amount, Balance: amount})

	symbol := cfg.Appearance.CurrencySymbol
	fmt.Printf("  Created %q: %s saved toward %s\n",
		name, cli.FormatAmount(amount, symbol), cli.FormatAmount(goal, symbol))
	return nil
}
