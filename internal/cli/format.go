// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"fundwarrior/internal/fund"
)

// FormatAmount formats cents with the configured currency symbol. The
// sign of a negative amount stays ahead of the symbol.
func FormatAmount(cents int64, symbol string) string {
	s := fund.DisplayDollars(cents)
	if symbol != "" && symbol != "$" {
		s = strings.Replace(s, "$", symbol, 1)
	}
	return s
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
