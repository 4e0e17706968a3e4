package fund

import "fmt"

// NotFoundError reports a lookup of a fund name that does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no fund named %q", e.Name)
}

// DuplicateError reports an attempt to create a fund under a name that
// is already taken.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("fund %q already exists", e.Name)
}

// ParseError reports a malformed line in a fund file.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
