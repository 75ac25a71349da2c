package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a ticket collection that is not a JSON array.
	ErrMalformedInput = errors.New("tickets: expected an array")
	// ErrSkippedItems reports array entries that could not be read as tickets.
	// The remaining tickets are still returned.
	ErrSkippedItems = errors.New("tickets: skipped unreadable entries")
)

// DecodeItems decodes a JSON array of tickets. Empty input and null decode to
// an empty list. Anything that is not an array yields an empty list and
// ErrMalformedInput. Entries that fail to decode are dropped and reported
// with ErrSkippedItems next to the tickets that did decode.
func DecodeItems(raw json.RawMessage) ([]WorkItem, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []WorkItem{}, nil
	}
	if raw[0] != '[' {
		return []WorkItem{}, fmt.Errorf("%w, got %s", ErrMalformedInput, kindOf(raw[0]))
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []WorkItem{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	items := make([]WorkItem, 0, len(elems))
	var errs []error
	for i, el := range elems {
		var it WorkItem
		if err := json.Unmarshal(el, &it); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		items = append(items, it)
	}
	if len(errs) > 0 {
		return items, fmt.Errorf("%w (%d of %d): %w", ErrSkippedItems, len(errs), len(elems), errors.Join(errs...))
	}
	return items, nil
}

// Recoverable reports whether err still leaves a usable, possibly empty,
// ticket list.
func Recoverable(err error) bool {
	return errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrSkippedItems)
}

func kindOf(c byte) string {
	switch {
	case c == '{':
		return "object"
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "boolean"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}
