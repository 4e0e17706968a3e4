package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded  TEXT NOT NULL,
    fund      TEXT NOT NULL,
    op        TEXT NOT NULL,
    amount    INTEGER NOT NULL,
    balance   INTEGER NOT NULL,
    note      TEXT
);

CREATE INDEX IF NOT EXISTS idx_entries_fund ON entries(fund);
`

// SQLite records entries in a local database file.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Record appends one entry. A zero Time stamps the entry with now.
func (s *SQLite) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	when := e.Time
	if when.IsZero() {
		when = time.Now()
	}

	_, err := s.db.Exec(`INSERT INTO entries (recorded, fund, op, amount, balance, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		when.UTC().Format(time.RFC3339), e.Fund, e.Op, e.Amount, e.Balance, e.Note,
	)
	return err
}

// Recent returns entries newest first. An empty fundName matches every
// fund; limit <= 0 returns everything.
func (s *SQLite) Recent(fundName string, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := "SELECT id, recorded, fund, op, amount, balance, note FROM entries"
	var args []any
	if fundName != "" {
		query += " WHERE fund = ?"
		args = append(args, fundName)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recorded string
		var note sql.NullString
		if err := rows.Scan(&e.ID, &recorded, &e.Fund, &e.Op, &e.Amount, &e.Balance, &note); err != nil {
			return nil, err
		}
		// A row with a mangled timestamp is skipped with a warning, never
		// returned as a year-1 entry.
		when, err := time.Parse(time.RFC3339, recorded)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: journal entry %d: bad timestamp %q, skipped\n", e.ID, recorded)
			continue
		}
		e.Time = when
		if note.Valid {
			e.Note = note.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the journal database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
