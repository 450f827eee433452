package tableset

import (
	"fmt"
	"slices"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/hash"
	"github.com/arloliu/runetab/skiplist"
)

// Set is an immutable collection of named skip-list tables, ordered by name.
type Set struct {
	names  []string
	tables []*skiplist.Table
	byName map[string]int
	byID   map[uint64]int
}

func newSet(names []string, tables []*skiplist.Table) *Set {
	s := &Set{
		names:  names,
		tables: tables,
		byName: make(map[string]int, len(names)),
		byID:   make(map[uint64]int, len(names)),
	}
	for i, name := range names {
		s.byName[name] = i
		s.byID[hash.ID(name)] = i
	}

	return s
}

// Len returns the number of tables.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the table names in ascending order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Table returns the table registered under name.
func (s *Set) Table(name string) (*skiplist.Table, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrTableNotFound, name)
	}

	return s.tables[i], nil
}

// TableByID returns the table whose name hashes to id.
func (s *Set) TableByID(id uint64) (*skiplist.Table, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %#x", errs.ErrTableNotFound, id)
	}

	return s.tables[i], nil
}

// Contains reports whether c is in the named table.
func (s *Set) Contains(name string, c rune) (bool, error) {
	t, err := s.Table(name)
	if err != nil {
		return false, err
	}

	return t.Contains(c), nil
}

// SizeBytes returns the combined encoded size of all tables.
func (s *Set) SizeBytes() int {
	n := 0
	for _, t := range s.tables {
		n += t.SizeBytes()
	}

	return n
}
