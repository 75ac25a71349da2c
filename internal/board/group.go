// Package board derives the column view of a ticket list: grouping by a
// selected field and ordering with a single comparator.
package board

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/idilsaglam/kanban/internal/model"
)

// Group is one column's worth of tickets sharing a group value.
type Group struct {
	Key   string
	Items []model.WorkItem
}

// Grouping is an ordered mapping from group value to tickets.
type Grouping []Group

// Keys returns the group values in column order.
func (g Grouping) Keys() []string {
	keys := make([]string, len(g))
	for i, grp := range g {
		keys[i] = grp.Key
	}
	return keys
}

// Flatten concatenates every group in column order.
func (g Grouping) Flatten() []model.WorkItem {
	n := 0
	for _, grp := range g {
		n += len(grp.Items)
	}
	out := make([]model.WorkItem, 0, n)
	for _, grp := range g {
		out = append(out, grp.Items...)
	}
	return out
}

// GroupBy partitions items by key. Relative order inside a group follows the
// input. Columns appear in first-seen order, except priority columns which
// are ascending by level. The input slice is not modified.
func GroupBy(items []model.WorkItem, key model.GroupKey) Grouping {
	groups := Grouping{}
	index := make(map[string]int)
	for _, it := range items {
		v := key.Value(it)
		i, ok := index[v]
		if !ok {
			i = len(groups)
			index[v] = i
			groups = append(groups, Group{Key: v})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	if key == model.GroupByPriority {
		slices.SortStableFunc(groups, func(a, b Group) int {
			return compareNumericKeys(a.Key, b.Key)
		})
	}
	return groups
}

// numeric keys sort before non-numeric ones
func compareNumericKeys(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return 0
}
