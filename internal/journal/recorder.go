// Package journal keeps a history of fund mutations in a local SQLite
// database so past deposits, spends, and transfers can be read back.
package journal

import "time"

// Entry operation kinds.
const (
	OpCreate      = "create"
	OpDeposit     = "deposit"
	OpSpend       = "spend"
	OpTransferIn  = "transfer-in"
	OpTransferOut = "transfer-out"
	OpRename      = "rename"
	OpRemove      = "remove"
)

// Entry is one recorded fund mutation.
type Entry struct {
	ID      int64
	Time    time.Time
	Fund    string
	Op      string
	Amount  int64  // cents moved by the operation, zero for renames
	Balance int64  // fund balance after the operation
	Note    string // transfer peer or rename target
}

// Recorder persists fund mutations for later review.
type Recorder interface {
	Record(e Entry) error
	Recent(fundName string, limit int) ([]Entry, error)
	Close() error
}
