// Package core holds the todo domain: the record type, the in-memory store
// that owns every record, and the service that guards it for concurrent hosts.
package core

import (
	"fmt"
	"strings"
)

// Todo is the central entity of the domain.
// Its JSON field names are part of the wire contract and must not change.
type Todo struct {
	ID        uint32 `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Patch describes a partial update. Only the fields that are set are applied.
type Patch struct {
	Text      Optional[string] `json:"text"`
	Completed Optional[bool]   `json:"completed"`
}

// IsEmpty reports whether the patch would leave a record unchanged.
func (p Patch) IsEmpty() bool {
	return !p.Text.IsSet() && !p.Completed.IsSet()
}

func (p Patch) apply(t *Todo) {
	if text, ok := p.Text.Get(); ok {
		t.Text = text
	}
	if completed, ok := p.Completed.Get(); ok {
		t.Completed = completed
	}
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType `json:"type"`
	ID        uint32    `json:"id"`
	Timestamp int64     `json:"timestamp"` // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s todo %d", e.Type, e.ID)
}

// ParseEventType maps a case-insensitive name such as "create" to its EventType.
func ParseEventType(name string) (EventType, error) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(name))); t {
	case EventCreate, EventModify, EventDelete:
		return t, nil
	}
	return "", fmt.Errorf("unknown event type %q", name)
}
