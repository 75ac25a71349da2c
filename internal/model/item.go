package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// WorkItem is a ticket as delivered by the data source.
// Fields are taken as-is; no assignee lookup happens.
type WorkItem struct {
	ID       Ident    `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Status   string   `json:"status" yaml:"status"`
	UserID   Ident    `json:"userId" yaml:"userId"`
	Priority Priority `json:"priority" yaml:"priority"`
}

// Priority is the urgency level of a ticket. 4 is most urgent, 0 is none.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// PriorityInvalid marks a priority the server sent in a form that is not an
// integer. It labels as "Unknown".
const PriorityInvalid Priority = -1

// Label returns the human-readable name of p.
func (p Priority) Label() string { return PriorityLabel(int(p)) }

func (p Priority) String() string { return strconv.Itoa(int(p)) }

// PriorityLabel maps any integer to a label; values outside 0..4 are "Unknown".
func PriorityLabel(p int) string {
	switch Priority(p) {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	case PriorityNone:
		return "No Priority"
	default:
		return "Unknown"
	}
}

// UnmarshalJSON accepts integers, integral floats such as 1.0 and numeric
// strings. null is PriorityNone. Any other value becomes PriorityInvalid
// instead of failing the whole ticket.
func (p *Priority) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = PriorityNone
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	*p = PriorityInvalid
	if n, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*p = Priority(n)
		return nil
	}
	if f, err := strconv.ParseFloat(string(b), 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*p = Priority(f)
	}
	return nil
}

// Ident is an identifier that servers send either as a JSON string or a number.
type Ident string

// UnmarshalJSON accepts strings, numbers and null.
func (id *Ident) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = Ident(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = Ident(n.String())
	return nil
}
