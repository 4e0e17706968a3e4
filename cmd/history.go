package cmd

import (
	"fmt"

	"fundwarrior/internal/cli"
	"fundwarrior/internal/config"
	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recorded deposits, spends, and transfers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "Maximum entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Journal.Enabled {
		fmt.Println("  Journaling is disabled. Enable it in the config or run `fund setup`.")
		return nil
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	rec, err := journal.Open(config.JournalPath(cfg))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer func() { _ = rec.Close() }()

	entries, err := rec.Recent(name, flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("  No journal entries yet.")
		return nil
	}

	symbol := cfg.Appearance.CurrencySymbol
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		amount := ""
		if e.Amount != 0 {
			amount = cli.FormatAmount(e.Amount, symbol)
		}
		rows = append(rows, []string{
			e.Time.Local().Format("2006-01-02 15:04"),
			e.Fund,
			e.Op,
			amount,
			cli.FormatAmount(e.Balance, symbol),
			e.Note,
		})
	}

	title := "History"
	if name != "" {
		title = "History: " + name
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"When", "Fund", "Op", "Amount", "Balance", "Note"},
		Rows:    rows,
	}))

	// For a single fund the balance trajectory fits in a sparkline,
	// oldest entry on the left.
	if name != "" && len(entries) > 1 {
		values := make([]float64, len(entries))
		for i, e := range entries {
			values[len(entries)-1-i] = float64(e.Balance)
		}
		fmt.Printf("  Balance over time: %s\n", cli.RenderSparkline(values))
	}
	fmt.Println()
	return nil
}
