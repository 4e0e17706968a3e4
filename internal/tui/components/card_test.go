package components

import (
	"strings"
	"testing"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so styles emit ANSI codes under test.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "one line", 24)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 24)

	shortLines := len(strings.Split(short, "\n"))
	tallLines := len(strings.Split(tall, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("short card has %d lines, tall has %d", shortLines, tallLines)
	}

	joined := CardRow([]string{tall, short})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d", got, tallLines)
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		widths := LayoutRow(100, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Errorf("n=%d: widths sum to %d, want 100", n, sum)
		}
	}
}

func TestMetricCardShowsLabelAndValue(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := MetricCard(Metric{Label: "Saved", Value: "$12.00"}, 24)
	if !strings.Contains(card, "Saved") {
		t.Errorf("card missing label:\n%s", card)
	}
	if !strings.Contains(card, "$12.00") {
		t.Errorf("card missing value:\n%s", card)
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}
