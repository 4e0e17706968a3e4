package fund

import (
	"sort"
)

// Manager owns a collection of funds keyed by unique name, bound to the
// file they load from and save to. It is not safe for concurrent use.
type Manager struct {
	path  string
	funds map[string]*Fund
}

// NewManager returns an empty manager bound to path.
func NewManager(path string) *Manager {
	return &Manager{
		path:  path,
		funds: make(map[string]*Fund),
	}
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// Fund looks up a fund by name. The returned pointer aliases manager
// state, so mutations through it are visible on the next Save. Lookup
// never creates; a missing name is a *NotFoundError.
func (m *Manager) Fund(name string) (*Fund, error) {
	f, ok := m.funds[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return f, nil
}

// AddFund inserts a fund under name. An existing fund under the same
// name is left untouched and the call fails with a *DuplicateError.
func (m *Manager) AddFund(name string, f Fund) error {
	if _, ok := m.funds[name]; ok {
		return &DuplicateError{Name: name}
	}
	m.funds[name] = &f
	return nil
}

// Rename moves a fund from oldName to newName. It fails with a
// *NotFoundError when oldName is absent and a *DuplicateError when
// newName is taken; on any failure the manager is unchanged. Renaming
// a fund to its own name is a no-op.
func (m *Manager) Rename(oldName, newName string) error {
	f, ok := m.funds[oldName]
	if !ok {
		return &NotFoundError{Name: oldName}
	}
	if oldName == newName {
		return nil
	}
	if _, ok := m.funds[newName]; ok {
		return &DuplicateError{Name: newName}
	}
	delete(m.funds, oldName)
	m.funds[newName] = f
	return nil
}

// Remove deletes a fund and returns it. A missing name is a *NotFoundError.
func (m *Manager) Remove(name string) (Fund, error) {
	f, ok := m.funds[name]
	if !ok {
		return Fund{}, &NotFoundError{Name: name}
	}
	delete(m.funds, name)
	return *f, nil
}

// Merge copies funds from other into the manager, keeping the existing
// fund wherever a name is already present.
func (m *Manager) Merge(other map[string]Fund) {
	for name, f := range other {
		if _, ok := m.funds[name]; ok {
			continue
		}
		cp := f
		m.funds[name] = &cp
	}
}

// Names returns all fund names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.funds))
	for name := range m.funds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of funds.
func (m *Manager) Len() int {
	return len(m.funds)
}
