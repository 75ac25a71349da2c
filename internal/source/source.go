// Package source loads the ticket list a board is drawn from.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/kanban/internal/model"
)

// DefaultURL is the endpoint used when none is configured.
const DefaultURL = "https://api.quicksell.co/v1/internal/frontend-assignment"

var (
	// ErrFetch wraps transport failures and unexpected HTTP status codes.
	ErrFetch = errors.New("fetch tickets")
	// ErrDecode wraps payloads that are not valid JSON documents.
	ErrDecode = errors.New("decode tickets")
	// ErrMalformedInput is returned when "tickets" is present but not an array.
	ErrMalformedInput = model.ErrMalformedInput
	// ErrSkippedItems is returned next to the tickets that did decode.
	ErrSkippedItems = model.ErrSkippedItems
)

// Source produces the full ticket list. Each call replaces any earlier result.
type Source interface {
	Fetch(ctx context.Context) ([]model.WorkItem, error)
}

// payload is the document shape shared by the endpoint and local files.
type payload struct {
	Tickets json.RawMessage `json:"tickets"`
}

// Decode parses a {"tickets": [...]} document. A missing or null tickets field
// yields an empty list. The returned slice is never nil, even alongside an error.
func Decode(data []byte) ([]model.WorkItem, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return model.DecodeItems(p.Tickets)
}
