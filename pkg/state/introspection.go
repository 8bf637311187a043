package state

import (
	"github.com/aretw0/introspection"
)

// NotesState exposes internal state for observability.
type NotesState struct {
	View    string `json:"view"`
	Filter  string `json:"filter,omitempty"`
	Count   int    `json:"count"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *NotesStore) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := NotesState{
		View:    string(s.view),
		Filter:  s.filter,
		Count:   len(s.collection),
		Loading: s.loading,
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *NotesStore) ComponentType() string {
	return "notes-store"
}

// CategoriesState exposes internal state for observability.
type CategoriesState struct {
	Count   int    `json:"count"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *CategoriesStore) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := CategoriesState{
		Count:   len(s.cats),
		Loading: s.loading,
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *CategoriesStore) ComponentType() string {
	return "categories-store"
}

var _ introspection.Introspectable = (*NotesStore)(nil)
var _ introspection.Component = (*NotesStore)(nil)
var _ introspection.Introspectable = (*CategoriesStore)(nil)
var _ introspection.Component = (*CategoriesStore)(nil)
