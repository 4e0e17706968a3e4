package fund

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// writeFundFile creates a fund file with the given lines and returns its path.
func writeFundFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "funds")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileCreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "funds")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d for missing file, want 0", m.Len())
	}
	if m.Path() != path {
		t.Errorf("Path = %q, want %q", m.Path(), path)
	}

	// First load brings the file (and its directory) into existence.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("fund file not created on load: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("new fund file size = %d, want 0", info.Size())
	}
}

func TestLoad_ParsesFunds(t *testing.T) {
	path := writeFundFile(t,
		"rent:50000:100000",
		"food:3000:20000",
	)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}

	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 50000 || rent.Goal != 100000 {
		t.Errorf("rent = %+v, want Amount 50000 Goal 100000", *rent)
	}
}

func TestLoad_ExtraFieldsIgnored(t *testing.T) {
	path := writeFundFile(t, "rent:50000:100000:junk:more")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 50000 || rent.Goal != 100000 {
		t.Errorf("rent = %+v, want Amount 50000 Goal 100000", *rent)
	}
}

func TestLoad_BlankLineIsParseError(t *testing.T) {
	// A blank line splits to one field, which is malformed like any other
	// short line; valid funds around it don't rescue the file.
	path := writeFundFile(t,
		"rent:50000:100000",
		"",
		"food:3000:20000",
	)

	_, err := Load(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
	if pe.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", pe.Line)
	}
}

func TestLoad_DuplicateNameLastWins(t *testing.T) {
	path := writeFundFile(t,
		"rent:1:2",
		"rent:50000:100000",
	)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 50000 {
		t.Errorf("rent.Amount = %d, want 50000 (last line wins)", rent.Amount)
	}
}

func TestLoad_MalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantLine int
	}{
		{"too few fields", []string{"rent:50000"}, 1},
		{"bad amount", []string{"rent:abc:100000"}, 1},
		{"bad goal", []string{"rent:50000:x"}, 1},
		{"error names later line", []string{"rent:50000:100000", "food:oops:20000"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFundFile(t, tt.lines...)

			_, err := Load(path)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Load error = %v, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds")

	m := NewManager(path)
	funds := map[string]Fund{
		"rent":     New(50000, 100000),
		"food":     New(3000, 20000),
		"vacation": New(-150, 500000),
	}
	for name, f := range funds {
		if err := m.AddFund(name, f); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != len(funds) {
		t.Fatalf("Len = %d, want %d", got.Len(), len(funds))
	}
	for name, want := range funds {
		f, err := got.Fund(name)
		if err != nil {
			t.Fatalf("Fund(%q): %v", name, err)
		}
		if f.Amount != want.Amount || f.Goal != want.Goal {
			t.Errorf("fund %q = %+v, want %+v", name, *f, want)
		}
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "funds")

	m := NewManager(path)
	if err := m.AddFund("rent", New(1, 2)); err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("fund file missing after Save: %v", err)
	}
}

func TestSaveShrinksFile(t *testing.T) {
	// A shorter rewrite must fully replace the previous contents, not
	// leave a stale tail behind.
	path := writeFundFile(t,
		"averylongfundname:123456789:987654321",
		"second:1:2",
	)

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Remove("averylongfundname"); err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "second:1:2\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestSaveSortedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds")
	m := NewManager(path)
	for _, name := range []string{"zebra", "apple"} {
		if err := m.AddFund(name, New(1, 2)); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "apple:1:2\nzebra:1:2\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestRentScenario(t *testing.T) {
	// Full life of a fund: create it, pay in, pay rent out, persist,
	// and read it back across a fresh load.
	path := filepath.Join(t.TempDir(), "funds")

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddFund("rent", New(50000, 100000)); err != nil {
		t.Fatalf("AddFund: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	rent.Deposit(50000)
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	m, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rent, err = m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 100000 {
		t.Fatalf("Amount = %d after deposit, want 100000", rent.Amount)
	}
	rent.Spend(95000)
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	m, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rent, err = m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 5000 {
		t.Errorf("Amount = %d at end of scenario, want 5000", rent.Amount)
	}
	if got := DisplayDollars(rent.Amount); got != "$50.00" {
		t.Errorf("DisplayDollars = %q, want %q", got, "$50.00")
	}
}

func FuzzParseLine(f *testing.F) {
	f.Add("rent:50000:100000")
	f.Add("food:3000:20000:extra")
	f.Add("rent:50000")
	f.Add("rent:abc:100000")
	f.Add(":1:2")
	f.Add("::")
	f.Add("no colons here")
	f.Add("rent:-1:-2")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		name, fd, err := parseLine(line)
		if err != nil {
			return
		}
		// Anything that parses must survive a write/parse round trip.
		rewritten := name + ":" + strconv.FormatInt(fd.Amount, 10) +
			":" + strconv.FormatInt(fd.Goal, 10)
		name2, fd2, err := parseLine(rewritten)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", rewritten, err)
		}
		if name2 != name || fd2 != fd {
			t.Errorf("round trip: got %q %+v, want %q %+v", name2, fd2, name, fd)
		}
	})
}
