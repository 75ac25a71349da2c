package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItems(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		items, err := DecodeItems([]byte(` [{"id":1,"title":"A"}] `))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "A", items[0].Title)
	})

	t.Run("null and empty", func(t *testing.T) {
		for _, in := range []string{"", "null", "  "} {
			items, err := DecodeItems([]byte(in))
			require.NoError(t, err, "%q", in)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		}
	})

	t.Run("not an array", func(t *testing.T) {
		for in, kind := range map[string]string{
			`{"id":1}`:  "object",
			`"tickets"`: "string",
			`42`:        "number",
			`true`:      "boolean",
		} {
			items, err := DecodeItems([]byte(in))
			require.Error(t, err, in)
			assert.True(t, errors.Is(err, ErrMalformedInput))
			assert.Contains(t, err.Error(), kind)
			assert.Empty(t, items)
		}
	})

	t.Run("bad entries are skipped", func(t *testing.T) {
		items, err := DecodeItems([]byte(`[
			{"id":"a","title":"kept","priority":2},
			{"id":{"x":1},"title":"dropped"},
			{"id":"b","title":"also kept","priority":4},
			"not a ticket"
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkippedItems)
		assert.False(t, errors.Is(err, ErrMalformedInput))
		assert.Contains(t, err.Error(), "2 of 4")
		assert.True(t, Recoverable(err))
		require.Len(t, items, 2)
		assert.Equal(t, "kept", items[0].Title)
		assert.Equal(t, "also kept", items[1].Title)
	})

	t.Run("odd priorities keep the ticket", func(t *testing.T) {
		items, err := DecodeItems([]byte(`[
			{"id":"1","priority":"3"},
			{"id":"2","priority":1.0},
			{"id":"3","priority":2.5},
			{"id":"4","priority":true},
			{"id":"5","priority":null},
			{"id":"6"}
		]`))
		require.NoError(t, err)
		require.Len(t, items, 6)
		want := []Priority{PriorityHigh, PriorityLow, PriorityInvalid, PriorityInvalid, PriorityNone, PriorityNone}
		for i, p := range want {
			assert.Equal(t, p, items[i].Priority, "ticket %s", items[i].ID)
		}
		assert.Equal(t, "Unknown", items[2].Priority.Label())
	})
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(ErrMalformedInput))
	assert.True(t, Recoverable(ErrSkippedItems))
	assert.False(t, Recoverable(errors.New("boom")))
	assert.False(t, Recoverable(nil))
}
