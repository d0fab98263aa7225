package hotkey

import (
	"sort"

	"github.com/dshills/modalkey/internal/input/key"
)

// Table holds the ordered bindings for one mode.
type Table struct {
	// Mode is the mode this table applies to.
	Mode string

	// Bindings are scanned in order; the last match wins.
	Bindings []Binding
}

// NewTable creates an empty table for a mode.
func NewTable(mode string) *Table {
	return &Table{
		Mode:     mode,
		Bindings: make([]Binding, 0),
	}
}

// Add appends a binding to this table.
func (t *Table) Add(b Binding) *Table {
	t.Bindings = append(t.Bindings, b)
	return t
}

// Lookup returns the last binding matching the event, scanning in order.
// Earlier matches are shadowed, never removed.
func (t *Table) Lookup(ev key.Event) (Binding, bool) {
	var found Binding
	var ok bool
	for _, b := range t.Bindings {
		if b.Matches(ev) {
			found = b
			ok = true
		}
	}
	return found, ok
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	return len(t.Bindings)
}

// Set holds the tables for all modes.
type Set struct {
	tables map[string]*Table
}

// NewSet creates an empty table set.
func NewSet() *Set {
	return &Set{tables: make(map[string]*Table)}
}

// Table returns the table for a mode, or nil if none exists.
func (s *Set) Table(mode string) *Table {
	return s.tables[mode]
}

// Ensure returns the table for a mode, creating it if needed.
func (s *Set) Ensure(mode string) *Table {
	t, ok := s.tables[mode]
	if !ok {
		t = NewTable(mode)
		s.tables[mode] = t
	}
	return t
}

// Merge merges src into the mode's table per the override policy and
// returns any conflicts.
func (s *Set) Merge(mode string, src []Binding, override bool) []Conflict {
	t := s.Ensure(mode)
	merged, conflicts := Merge(mode, t.Bindings, src, override)
	t.Bindings = merged
	return conflicts
}

// Modes returns the mode names with tables, sorted.
func (s *Set) Modes() []string {
	modes := make([]string, 0, len(s.tables))
	for mode := range s.tables {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
