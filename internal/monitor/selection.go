package monitor

import (
	"errors"
	"fmt"
)

// ErrNoSelection is returned by Resolve when no row is selected or the
// selected index is past the end of the list.
var ErrNoSelection = errors.New("no process selected")

// Selection is an optional index into the record list.
//
// Selection does not follow a process across refreshes: after a re-sort the
// same index may point at a different process.
type Selection struct {
	index int
	valid bool
}

// SelectIndex returns a selection of row i.
func SelectIndex(i int) Selection {
	return Selection{index: i, valid: true}
}

// Index reports the selected row, if any.
func (s Selection) Index() (int, bool) {
	return s.index, s.valid
}

// Next moves the selection one row down in a list of n rows, wrapping from
// the last row (or anything past it) to the first. With no selection it
// selects row 0.
func (s Selection) Next(n int) Selection {
	if !s.valid {
		return SelectIndex(0)
	}
	if s.index >= max(n-1, 0) {
		return SelectIndex(0)
	}
	return SelectIndex(s.index + 1)
}

// Previous moves the selection one row up in a list of n rows, wrapping from
// the first row to the last. With no selection it selects row 0.
func (s Selection) Previous(n int) Selection {
	if !s.valid {
		return SelectIndex(0)
	}
	if s.index == 0 {
		return SelectIndex(max(n-1, 0))
	}
	return SelectIndex(s.index - 1)
}

// Clamp pulls a selection that fell off the end of a shrunk list back onto
// the last row. An empty list clears the selection.
func (s Selection) Clamp(n int) Selection {
	switch {
	case !s.valid:
		return s
	case n == 0:
		return Selection{}
	case s.index >= n:
		return SelectIndex(n - 1)
	}
	return s
}

// Resolve returns the record the selection points at.
func (s Selection) Resolve(records []ProcessRecord) (ProcessRecord, error) {
	if !s.valid {
		return ProcessRecord{}, ErrNoSelection
	}
	if s.index < 0 || s.index >= len(records) {
		return ProcessRecord{}, fmt.Errorf("row %d of %d: %w", s.index, len(records), ErrNoSelection)
	}
	return records[s.index], nil
}
