package components

import (
	"strings"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a single entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Funds", Key: 'f'},
	{Name: "History", Key: 'h'},
	{Name: "Settings", Key: 's'},
}

// RenderTabBar renders the tab bar with the given active index. Inactive
// tabs show their first letter bracketed as the shortcut key.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, accent.Render(tab.Name))
			continue
		}
		parts = append(parts,
			dim.Render("[")+accent.Render(string(tab.Name[0]))+dim.Render("]")+muted.Render(tab.Name[1:]))
	}

	return " " + strings.Join(parts, "  ")
}

// TabWidth returns the rendered width of tab i given the active tab.
func TabWidth(i, activeIdx int) int {
	w := len(Tabs[i].Name)
	if i != activeIdx {
		w += 2 // bracket pair around the shortcut letter
	}
	return w
}

// TabAtX maps a click column on the tab bar row to a tab index, or -1.
func TabAtX(x, activeIdx int) int {
	pos := 1 // leading space
	for i := range Tabs {
		w := TabWidth(i, activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 2
	}
	return -1
}

// TabIdxByKey matches a pressed rune to its tab, or returns -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
