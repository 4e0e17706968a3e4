package components

import (
	"fmt"
	"math"
	"strings"

	"fundwarrior/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders values as one line of block characters. The line is
// scaled over the full value range so negative balances still slope.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	ramp := []rune("▁▂▃▄▅▆▇█")

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > 0 {
		lo = 0
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		step := int((v - lo) / span * float64(len(ramp)-1))
		if step < 0 {
			step = 0
		}
		if step > len(ramp)-1 {
			step = len(ramp) - 1
		}
		out[i] = ramp[step]
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(string(out))
}

// BarChart renders a block bar chart with a y-axis ceiling label and
// thinned x-axis labels. Too small an area falls back to a sparkline.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}
	ceiling := chartCeiling(peak)

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < 5 {
		plotW = 5
	}

	// Bars are barW columns wide with a one-column gap. When they don't
	// fit, the oldest values drop off the left edge.
	n := len(values)
	barW := (plotW - (n - 1)) / n
	if barW < 1 {
		keep := (plotW + 1) / 2
		if keep < 1 {
			keep = 1
		}
		values = values[n-keep:]
		if len(labels) == n {
			labels = labels[n-keep:]
		}
		n, barW = keep, 1
	}
	if barW > 6 {
		barW = 6
	}
	gap := 1
	if n == 1 {
		gap = 0
	}
	axisLen := n*barW + (n-1)*gap

	// Fill per bar in eighths of a cell over the whole plot height.
	ramp := []rune(" ▁▂▃▄▅▆▇")
	eighths := make([]int, n)
	for i, v := range values {
		e := int(math.Round(v / ceiling * float64(height*8)))
		if e > height*8 {
			e = height * 8
		}
		if e < 0 {
			e = 0
		}
		if v > 0 && e == 0 {
			e = 1 // a nonzero day always shows
		}
		eighths[i] = e
	}

	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fill := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		color := t.Accent
		if row >= (height*3)/4 {
			color = t.AccentBright
		}
		barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

		yLabel := ""
		if row == height-1 {
			yLabel = formatChartLabel(ceiling)
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, yLabel)))
		b.WriteString(axis.Render("│"))

		for i, e := range eighths {
			if i > 0 && gap > 0 {
				b.WriteString(fill.Render(" "))
			}
			cell := e - row*8
			switch {
			case cell >= 8:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case cell > 0:
				b.WriteString(barStyle.Render(strings.Repeat(string(ramp[cell]), barW)))
			default:
				b.WriteString(fill.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axis.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(fill.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axis.Render(xAxisLabels(labels, barW, gap, axisLen)))
	}
	return b.String()
}

// xAxisLabels spaces out as many labels as fit without touching.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	row := make([]byte, axisLen)
	for i := range row {
		row[i] = ' '
	}

	step := 1
	for step*(barW+gap) < 7 {
		step++
	}

	next := 0
	for i := 0; i < len(labels); i += step {
		pos := i * (barW + gap)
		end := pos + len(labels[i])
		if pos < next || end > axisLen {
			continue
		}
		copy(row[pos:end], labels[i])
		next = end + 1
	}
	return strings.TrimRight(string(row), " ")
}

// chartCeiling rounds peak up to a clean 1/2/5 axis value.
func chartCeiling(peak float64) float64 {
	exp := math.Floor(math.Log10(peak))
	base := math.Pow(10, exp)

	switch frac := peak / base; {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// formatChartLabel abbreviates an axis value: 1500 becomes "1.5k".
func formatChartLabel(v float64) string {
	units := []struct {
		div    float64
		suffix string
	}{
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "k"},
	}
	for _, u := range units {
		if v < u.div {
			continue
		}
		scaled := v / u.div
		if scaled == math.Trunc(scaled) {
			return fmt.Sprintf("%.0f%s", scaled, u.suffix)
		}
		return fmt.Sprintf("%.1f%s", scaled, u.suffix)
	}
	if v >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
