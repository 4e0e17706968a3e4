package components

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		pos := 1 // leading space
		for i := range Tabs {
			w := TabWidth(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := TabAtX(x, active); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // two-space separator
		}
	}
}

func TestTabAtXOutsideTabs(t *testing.T) {
	if got := TabAtX(0, 0); got != -1 {
		t.Errorf("TabAtX(0) = %d, want -1", got)
	}
	if got := TabAtX(500, 0); got != -1 {
		t.Errorf("TabAtX(500) = %d, want -1", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
