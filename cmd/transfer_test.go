package cmd

import (
	"errors"
	"testing"

	"fundwarrior/internal/fund"
)

func TestRunTransferMovesMoney(t *testing.T) {
	path := setupEnv(t)
	writeFunds(t, path, "rent:100000:0\nvacation:0:50000\n")

	if err := runTransfer(nil, []string{"rent", "vacation", "2.50"}); err != nil {
		t.Fatalf("runTransfer: %v", err)
	}

	m, err := fund.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 99750 {
		t.Errorf("rent.Amount = %d, want 99750", rent.Amount)
	}
	vacation, err := m.Fund("vacation")
	if err != nil {
		t.Fatal(err)
	}
	if vacation.Amount != 250 {
		t.Errorf("vacation.Amount = %d, want 250", vacation.Amount)
	}
}

func TestRunTransferMissingTargetLeavesSource(t *testing.T) {
	path := setupEnv(t)
	writeFunds(t, path, "rent:100000:0\n")

	err := runTransfer(nil, []string{"rent", "ghost", "1"})
	var nf *fund.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("runTransfer error = %v, want *NotFoundError", err)
	}

	m, err := fund.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rent, err := m.Fund("rent")
	if err != nil {
		t.Fatal(err)
	}
	if rent.Amount != 100000 {
		t.Errorf("rent.Amount = %d after failed transfer, want 100000", rent.Amount)
	}
}
