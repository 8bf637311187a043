package core

import "fmt"

// EventType represents the kind of change observed in a note collection
// or backing store.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventDelete  EventType = "DELETE"
	EventRefresh EventType = "REFRESH"
)

// Event represents a change in a collection or store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer, which also satisfies lifecycle.Event.
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
