// Package collision detects table name hash collisions while a table set is
// being assembled.
package collision

import (
	"fmt"

	"github.com/arloliu/runetab/errs"
)

// Tracker maps table ids to the names that produced them.
type Tracker struct {
	names map[uint64]string
	order []string
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records name under id.
//
// It fails with errs.ErrInvalidTableName for an empty name,
// errs.ErrDuplicateTable when name was already tracked, and
// errs.ErrHashCollision when a different name already owns id. A failed call
// leaves the tracker unchanged.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidTableName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateTable, name)
		}

		return fmt.Errorf("%w: %q and %q share id %#x", errs.ErrHashCollision, existing, name, id)
	}

	t.names[id] = name
	t.order = append(t.order, name)

	return nil
}

// Names returns the tracked names in the order they were added.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked names.
func (t *Tracker) Reset() {
	clear(t.names)
	t.order = t.order[:0]
}
