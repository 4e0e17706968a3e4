// Package fund implements named money envelopes, each tracking a balance
// and a savings goal in integer cents, plus the manager that loads and
// saves them as colon-delimited lines in a flat text file.
package fund

import "fmt"

// Fund is a single envelope of money. Amount and Goal are minor units
// (cents); arithmetic never touches floating point.
type Fund struct {
	Amount int64
	Goal   int64
}

// New returns a fund with the given starting balance and goal.
func New(amount, goal int64) Fund {
	return Fund{Amount: amount, Goal: goal}
}

// Deposit adds amount to the balance.
func (f *Fund) Deposit(amount int64) {
	f.Amount += amount
}

// Spend subtracts amount from the balance. The balance may go negative;
// callers that want to forbid overdraft check first.
func (f *Fund) Spend(amount int64) {
	f.Amount -= amount
}

// Remaining returns the cents still needed to reach the goal, clamped at zero.
func (f Fund) Remaining() int64 {
	if f.Amount >= f.Goal {
		return 0
	}
	return f.Goal - f.Amount
}

// Progress returns the fraction of the goal reached, in [0, 1]. A fund
// with no goal counts as complete.
func (f Fund) Progress() float64 {
	if f.Goal <= 0 {
		return 1
	}
	if f.Amount <= 0 {
		return 0
	}
	if f.Amount >= f.Goal {
		return 1
	}
	return float64(f.Amount) / float64(f.Goal)
}

// String renders a one-line balance summary. The distance to goal is the
// signed Goal - Amount: an overfunded fund shows a negative figure.
func (f Fund) String() string {
	return fmt.Sprintf("%s / %s -- %s away from goal",
		DisplayDollars(f.Amount), DisplayDollars(f.Goal), DisplayDollars(f.Goal-f.Amount))
}

// DisplayDollars formats cents as a dollar string: "$D.CC" with a
// two-digit cent field and no digit grouping. The sign of a negative
// amount precedes the dollar sign.
func DisplayDollars(cents int64) string {
	var sign string
	if cents < 0 {
		sign = "-"
	}
	d := cents / 100
	c := cents % 100
	if d < 0 {
		d = -d
	}
	if c < 0 {
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, d, c)
}
