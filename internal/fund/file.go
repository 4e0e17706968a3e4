package fund

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a fund file into a new manager. A missing file is not an
// error: the parent directory and an empty file are created, yielding an
// empty manager bound to path.
//
// Each line holds one fund as name:amount:goal. Fields past the third
// are ignored; fewer than three fields (a blank line included), or a
// non-integer amount or goal, is a *ParseError naming the offending line.
func Load(path string) (*Manager, error) {
	m := NewManager(path)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("opening fund file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating fund dir: %w", err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			return nil, fmt.Errorf("creating fund file: %w", err)
		}
		return m, nil
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name, fd, err := parseLine(scanner.Text())
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		// Duplicate names in the file: last one wins.
		cp := fd
		m.funds[name] = &cp
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fund file: %w", err)
	}

	return m, nil
}

// parseLine splits one name:amount:goal record.
func parseLine(line string) (string, Fund, error) {
	fields := strings.Split(line, ":")
	if len(fields) < 3 {
		return "", Fund{}, fmt.Errorf("%d field(s), want name:amount:goal", len(fields))
	}

	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "", Fund{}, fmt.Errorf("amount: %w", err)
	}
	goal, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return "", Fund{}, fmt.Errorf("goal: %w", err)
	}

	return fields[0], Fund{Amount: amount, Goal: goal}, nil
}

// Save writes every fund back to the manager's file, one name:amount:goal
// line per fund in name order. The write is atomic: a temp file in the
// same directory replaces the target via rename, so a crash mid-write
// never leaves a truncated or mixed fund file behind.
func (m *Manager) Save() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating fund dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "funds-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp fund file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, name := range m.Names() {
		f := m.funds[name]
		if _, err := fmt.Fprintf(w, "%s:%d:%d\n", name, f.Amount, f.Goal); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			return fmt.Errorf("writing fund file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing fund file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp fund file: %w", err)
	}

	if err := os.Rename(tmp.Name(), m.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing fund file: %w", err)
	}
	return nil
}
