package board

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/kanban/internal/model"
)

// Sorter orders tickets for one SortMode. The same Sorter is meant to order
// both the flattened list and every column so the two never disagree.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	mode model.SortMode
	coll *collate.Collator
}

// NewSorter returns a Sorter for mode. Titles are compared with the collation
// rules of lang.
func NewSorter(mode model.SortMode, lang language.Tag) *Sorter {
	return &Sorter{mode: mode, coll: collate.New(lang)}
}

// Sort returns a sorted copy of items. Both modes are stable; unknown modes
// return the input order.
func (s *Sorter) Sort(items []model.WorkItem) []model.WorkItem {
	out := make([]model.WorkItem, len(items))
	copy(out, items)
	if cmpFn := s.compare(); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func (s *Sorter) compare() func(a, b model.WorkItem) int {
	switch s.mode {
	case model.SortByPriority:
		return func(a, b model.WorkItem) int { return cmp.Compare(b.Priority, a.Priority) }
	case model.SortByTitle:
		return func(a, b model.WorkItem) int { return s.coll.CompareString(a.Title, b.Title) }
	}
	return nil
}
