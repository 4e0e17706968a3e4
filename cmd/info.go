package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Show one fund or all funds",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	m, cfg, err := loadManager()
	if err != nil {
		return err
	}
	symbol := cfg.Appearance.CurrencySymbol

	if len(args) == 1 {
		name := args[0]
		f, err := m.Fund(name)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(name))
		fmt.Println()
		fmt.Printf("  Balance:   %s\n", cli.FormatAmount(f.Amount, symbol))
		fmt.Printf("  Goal:      %s\n", cli.FormatAmount(f.Goal, symbol))
		fmt.Printf("  Remaining: %s\n", cli.FormatAmount(f.Remaining(), symbol))
		if bar := cli.RenderProgressBar(f.Amount, f.Goal, 30, symbol); bar != "" {
			fmt.Printf("  Progress:  %s %s\n", bar, cli.FormatPercent(f.Progress()))
		}
		fmt.Println()
		return nil
	}

	if m.Len() == 0 {
		fmt.Println()
		fmt.Println("  No funds yet. Create one with `fund new <name> [amount] [goal]`.")
		fmt.Println()
		return nil
	}

	var totalBalance, totalGoal int64
	rows := make([][]string, 0, m.Len()+2)
	for _, name := range m.Names() {
		f, err := m.Fund(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			name,
			cli.FormatAmount(f.Amount, symbol),
			cli.FormatAmount(f.Goal, symbol),
			cli.FormatAmount(f.Remaining(), symbol),
			cli.FormatPercent(f.Progress()),
		})
		totalBalance += f.Amount
		totalGoal += f.Goal
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatAmount(totalBalance, symbol),
		cli.FormatAmount(totalGoal, symbol),
		"",
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Funds",
		Headers: []string{"Name", "Balance", "Goal", "Remaining", "Progress"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
