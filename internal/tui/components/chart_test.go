package components

import (
	"strings"
	"testing"

	"fundwarrior/internal/tui/theme"
)

func TestChartCeiling(t *testing.T) {
	cases := []struct {
		peak float64
		want float64
	}{
		{7, 10},
		{99, 100},
		{100, 100},
		{101, 200},
		{350, 500},
		{1200, 2000},
		{5000, 5000},
	}
	for _, c := range cases {
		if got := chartCeiling(c.peak); got != c.want {
			t.Errorf("chartCeiling(%v) = %v, want %v", c.peak, got, c.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{12, "12"},
		{500, "500"},
		{1000, "1k"},
		{1500, "1.5k"},
		{2000000, "2M"},
		{2500000000, "2.5B"},
		{0.25, "0.25"},
	}
	for _, c := range cases {
		if got := formatChartLabel(c.v); got != c.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestSparklineScalesAcrossRange(t *testing.T) {
	theme.SetActive("flexoki-dark")

	flat := Sparkline([]float64{0, 0, 0}, theme.Active.Accent)
	if !strings.Contains(flat, "▁▁▁") {
		t.Errorf("flat zeros should render lowest blocks:\n%s", flat)
	}

	rising := Sparkline([]float64{0, 50, 100}, theme.Active.Accent)
	if !strings.Contains(rising, "█") {
		t.Errorf("peak value should render a full block:\n%s", rising)
	}

	// Negative values stretch the scale downward instead of clipping.
	mixed := Sparkline([]float64{-10, 0, 10}, theme.Active.Accent)
	if !strings.Contains(mixed, "▁") || !strings.Contains(mixed, "█") {
		t.Errorf("mixed-sign series should span the ramp:\n%s", mixed)
	}
}

func TestBarChartDimensions(t *testing.T) {
	theme.SetActive("flexoki-dark")

	vals := []float64{10, 20, 30}
	labels := []string{"a", "b", "c"}

	out := BarChart(vals, labels, 30, 4)
	lines := strings.Split(out, "\n")
	if got, want := len(lines), 4+2; got != want {
		t.Errorf("chart has %d lines, want %d (rows + axis + labels)", got, want)
	}
	if !strings.Contains(out, "└") {
		t.Errorf("chart missing axis corner:\n%s", out)
	}
	for _, l := range labels {
		if !strings.Contains(out, l) {
			t.Errorf("chart missing label %q", l)
		}
	}
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart([]float64{1, 2, 3}, nil, 30, 2)
	if strings.Contains(out, "└") || strings.Contains(out, "\n") {
		t.Errorf("tiny chart should fall back to a one-line sparkline:\n%s", out)
	}
}
