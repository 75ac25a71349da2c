package model

import (
	"fmt"
	"strings"
)

// GroupKey selects the field that partitions tickets into columns.
type GroupKey int

const (
	GroupByStatus GroupKey = iota
	GroupByUser
	GroupByPriority
)

// EmptyGroup is the column key for tickets whose grouping field is empty.
const EmptyGroup = "(none)"

var groupKeyNames = map[GroupKey]string{
	GroupByStatus:   "status",
	GroupByUser:     "user",
	GroupByPriority: "priority",
}

func (k GroupKey) String() string {
	if s, ok := groupKeyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Value returns the group value of it under k.
func (k GroupKey) Value(it WorkItem) string {
	var v string
	switch k {
	case GroupByUser:
		v = string(it.UserID)
	case GroupByPriority:
		v = it.Priority.String()
	default:
		v = it.Status
	}
	if strings.TrimSpace(v) == "" {
		return EmptyGroup
	}
	return v
}

// ParseGroupKey accepts "status", "user" (or "userId") and "priority".
func ParseGroupKey(s string) (GroupKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "status":
		return GroupByStatus, true
	case "user", "userid", "user_id":
		return GroupByUser, true
	case "priority":
		return GroupByPriority, true
	}
	return GroupByStatus, false
}

// GroupKeys lists every grouping in menu order.
func GroupKeys() []GroupKey { return []GroupKey{GroupByStatus, GroupByUser, GroupByPriority} }

// SortMode selects the ordering applied within and across columns.
// Modes other than SortByPriority and SortByTitle leave order untouched.
type SortMode string

const (
	SortByPriority SortMode = "priority"
	SortByTitle    SortMode = "title"
)

// ParseSortMode normalizes s. Unknown values are returned as-is and sort as identity.
func ParseSortMode(s string) (SortMode, bool) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case SortByPriority, SortByTitle:
		return m, true
	}
	return SortMode(s), false
}

// SortModes lists every ordering in menu order.
func SortModes() []SortMode { return []SortMode{SortByPriority, SortByTitle} }

// MarshalText encodes k by name.
func (k GroupKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *GroupKey) UnmarshalText(b []byte) error {
	v, ok := ParseGroupKey(string(b))
	if !ok {
		return fmt.Errorf("unknown grouping %q", b)
	}
	*k = v
	return nil
}
