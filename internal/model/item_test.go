package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{4, "Urgent"},
		{3, "High"},
		{2, "Medium"},
		{1, "Low"},
		{0, "No Priority"},
		{5, "Unknown"},
		{-1, "Unknown"},
		{1 << 20, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityLabel(tt.in), "PriorityLabel(%d)", tt.in)
		assert.Equal(t, tt.want, Priority(tt.in).Label())
	}
}

func TestWorkItemDecode(t *testing.T) {
	var items []WorkItem
	err := json.Unmarshal([]byte(`[
		{"id":"CAM-1","title":"Fix login","status":"Todo","userId":"usr-1","priority":4},
		{"id":2,"title":"B","status":"Done","userId":7,"priority":1},
		{"id":null,"title":"C"}
	]`), &items)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, Ident("CAM-1"), items[0].ID)
	assert.Equal(t, PriorityUrgent, items[0].Priority)
	assert.Equal(t, Ident("2"), items[1].ID)
	assert.Equal(t, Ident("7"), items[1].UserID)
	assert.Equal(t, Ident(""), items[2].ID)
	assert.Equal(t, PriorityNone, items[2].Priority)
}

func TestIdentRejectsObjects(t *testing.T) {
	var id Ident
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestGroupKeyValue(t *testing.T) {
	it := WorkItem{ID: "1", Status: "In progress", UserID: "usr-2", Priority: PriorityHigh}

	assert.Equal(t, "In progress", GroupByStatus.Value(it))
	assert.Equal(t, "usr-2", GroupByUser.Value(it))
	assert.Equal(t, "3", GroupByPriority.Value(it))

	empty := WorkItem{ID: "2"}
	assert.Equal(t, EmptyGroup, GroupByStatus.Value(empty))
	assert.Equal(t, EmptyGroup, GroupByUser.Value(empty))
	assert.Equal(t, "0", GroupByPriority.Value(empty))

	named := WorkItem{ID: "3", Status: "unknown", UserID: "unknown"}
	assert.NotEqual(t, GroupByStatus.Value(empty), GroupByStatus.Value(named))
	assert.NotEqual(t, GroupByUser.Value(empty), GroupByUser.Value(named))
}

func TestGroupKeyText(t *testing.T) {
	b, err := json.Marshal(struct {
		G GroupKey `json:"g"`
	}{GroupByUser})
	require.NoError(t, err)
	assert.JSONEq(t, `{"g":"user"}`, string(b))

	var k GroupKey
	require.NoError(t, k.UnmarshalText([]byte("priority")))
	assert.Equal(t, GroupByPriority, k)
	assert.Error(t, k.UnmarshalText([]byte("title")))
}

func TestParseGroupKey(t *testing.T) {
	tests := []struct {
		in   string
		want GroupKey
		ok   bool
	}{
		{"status", GroupByStatus, true},
		{"user", GroupByUser, true},
		{"userId", GroupByUser, true},
		{" Priority ", GroupByPriority, true},
		{"title", GroupByStatus, false},
	}
	for _, tt := range tests {
		got, ok := ParseGroupKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	for _, k := range GroupKeys() {
		back, ok := ParseGroupKey(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, back)
	}
}

func TestParseSortMode(t *testing.T) {
	m, ok := ParseSortMode("Title")
	assert.True(t, ok)
	assert.Equal(t, SortByTitle, m)

	m, ok = ParseSortMode("created")
	assert.False(t, ok)
	assert.Equal(t, SortMode("created"), m)
}
