package board

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/idilsaglam/kanban/internal/model"
)

// ViewState is what the user picked in the display menu.
type ViewState struct {
	Grouping model.GroupKey `json:"grouping" yaml:"grouping"`
	Ordering model.SortMode `json:"ordering" yaml:"ordering"`
	MenuOpen bool           `json:"-" yaml:"-"`
}

// DefaultViewState groups by status and orders by priority.
func DefaultViewState() ViewState {
	return ViewState{Grouping: model.GroupByStatus, Ordering: model.SortByPriority}
}

func (v ViewState) WithGrouping(k model.GroupKey) ViewState {
	v.Grouping = k
	return v
}

func (v ViewState) WithOrdering(m model.SortMode) ViewState {
	v.Ordering = m
	return v
}

func (v ViewState) ToggleMenu() ViewState {
	v.MenuOpen = !v.MenuOpen
	return v
}

// Column is a rendered group.
type Column struct {
	Key   string           `json:"key" yaml:"key"`
	Title string           `json:"title" yaml:"title"`
	Items []model.WorkItem `json:"tickets" yaml:"tickets"`
}

// View is the derived board for one ViewState.
type View struct {
	Grouping model.GroupKey   `json:"grouping" yaml:"grouping"`
	Ordering model.SortMode   `json:"ordering" yaml:"ordering"`
	Columns  []Column         `json:"columns" yaml:"columns"`
	Ordered  []model.WorkItem `json:"ordered" yaml:"ordered"`
}

// Derive groups items under state and orders the flattened list and every
// column with one Sorter.
func Derive(items []model.WorkItem, state ViewState, lang language.Tag) View {
	sorter := NewSorter(state.Ordering, lang)
	groups := GroupBy(items, state.Grouping)

	v := View{
		Grouping: state.Grouping,
		Ordering: state.Ordering,
		Columns:  make([]Column, 0, len(groups)),
		Ordered:  sorter.Sort(groups.Flatten()),
	}
	for _, g := range groups {
		v.Columns = append(v.Columns, Column{
			Key:   g.Key,
			Title: columnTitle(state.Grouping, g.Key),
			Items: sorter.Sort(g.Items),
		})
	}
	return v
}

// Len returns the number of tickets on the board.
func (v View) Len() int { return len(v.Ordered) }

func columnTitle(k model.GroupKey, key string) string {
	if k != model.GroupByPriority {
		return key
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return key
	}
	return model.PriorityLabel(n)
}
