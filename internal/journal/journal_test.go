package journal

import (
	"path/filepath"
	"testing"
	"time"
)

// openTemp opens a journal backed by a throwaway database.
func openTemp(t *testing.T) *SQLite {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTemp(t)

	when := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Time: when, Fund: "rent", Op: OpCreate, Amount: 0, Balance: 0},
		{Time: when, Fund: "rent", Op: OpDeposit, Amount: 50000, Balance: 50000},
		{Time: when, Fund: "food", Op: OpDeposit, Amount: 3000, Balance: 3000},
		{Time: when, Fund: "rent", Op: OpSpend, Amount: 20000, Balance: 30000},
	}
	for _, e := range entries {
		if err := j.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := j.Recent("", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	// Newest first.
	if got[0].Op != OpSpend || got[0].Fund != "rent" {
		t.Errorf("first entry = %s %s, want rent spend", got[0].Fund, got[0].Op)
	}
	if got[0].Balance != 30000 {
		t.Errorf("Balance = %d, want 30000", got[0].Balance)
	}
	if !got[0].Time.Equal(when) {
		t.Errorf("Time = %v, want %v", got[0].Time, when)
	}
}

func TestRecentFiltersByFund(t *testing.T) {
	j := openTemp(t)

	for _, e := range []Entry{
		{Fund: "rent", Op: OpDeposit, Amount: 1, Balance: 1},
		{Fund: "food", Op: OpDeposit, Amount: 2, Balance: 2},
		{Fund: "rent", Op: OpSpend, Amount: 1, Balance: 0},
	} {
		if err := j.Record(e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := j.Recent("rent", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Fund != "rent" {
			t.Errorf("entry fund = %q, want rent", e.Fund)
		}
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTemp(t)

	for i := 0; i < 10; i++ {
		if err := j.Record(Entry{Fund: "rent", Op: OpDeposit, Amount: 1, Balance: int64(i + 1)}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := j.Recent("", 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Balance != 10 {
		t.Errorf("newest Balance = %d, want 10", got[0].Balance)
	}
}

func TestRecentSkipsBadTimestamp(t *testing.T) {
	j := openTemp(t)

	for _, e := range []Entry{
		{Fund: "rent", Op: OpDeposit, Amount: 1, Balance: 1},
		{Fund: "rent", Op: OpSpend, Amount: 1, Balance: 0},
	} {
		if err := j.Record(e); err != nil {
			t.Fatal(err)
		}
	}
	// Corrupt one row behind the journal's back.
	if _, err := j.db.Exec("UPDATE entries SET recorded = 'not-a-time' WHERE balance = 0"); err != nil {
		t.Fatal(err)
	}

	got, err := j.Recent("", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Op != OpDeposit {
		t.Errorf("surviving entry op = %s, want %s", got[0].Op, OpDeposit)
	}
	if got[0].Time.IsZero() {
		t.Error("surviving entry has zero Time, want its recorded timestamp")
	}
}

func TestRecordStampsZeroTime(t *testing.T) {
	j := openTemp(t)

	before := time.Now().Add(-time.Minute)
	if err := j.Record(Entry{Fund: "rent", Op: OpDeposit, Amount: 1, Balance: 1}); err != nil {
		t.Fatal(err)
	}

	got, err := j.Recent("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Time.Before(before) {
		t.Errorf("Time = %v, want roughly now", got[0].Time)
	}
}

func TestRecordNote(t *testing.T) {
	j := openTemp(t)

	if err := j.Record(Entry{Fund: "rent", Op: OpTransferOut, Amount: 500, Balance: 100, Note: "food"}); err != nil {
		t.Fatal(err)
	}

	got, err := j.Recent("rent", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Note != "food" {
		t.Errorf("Note = %q, want %q", got[0].Note, "food")
	}
}

func TestNoop(t *testing.T) {
	var r Recorder = NewNoop()

	if err := r.Record(Entry{Fund: "rent", Op: OpDeposit}); err != nil {
		t.Errorf("Record: %v", err)
	}
	got, err := r.Recent("", 0)
	if err != nil {
		t.Errorf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
