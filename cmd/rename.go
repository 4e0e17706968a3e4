package cmd

import (
	"fmt"

	"fundwarrior/internal/journal"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a fund",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(_ *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]
	if err := checkFundName(newName); err != nil {
		return err
	}

	m, cfg, err := loadManager()
	if err != nil {
		return err
	}

	if err := m.Rename(oldName, newName); err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return err
	}

	f, err := m.Fund(newName)
	if err != nil {
		return err
	}

	rec := openJournal(cfg)
	defer func() { _ = rec.Close() }()
	record(rec, journal.Entry{Fund: oldName, Op: journal.OpRename, Balance: f.Amount, Note: newName})

	fmt.Printf("  Renamed %q to %q\n", oldName, newName)
	return nil
}
