// Package state holds the view-state containers. A store owns exactly one
// in-memory collection plus loading/error flags, and mutates it only after
// the repository confirmed the operation. Errors are recorded for display
// AND returned, so callers can still branch on them.
package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"notectl/pkg/core"
)

// View selects which note collection the store holds.
type View string

const (
	ViewActive   View = "active"
	ViewArchived View = "archived"
)

// ErrFilterArchived rejects category filtering while the archived view is
// selected. Deliberate UX policy carried over from the product, not a
// technical limitation.
var ErrFilterArchived = errors.New("category filter applies to the active view only")

// NotesStore holds the currently loaded note collection: either the active
// set or the archived set, never both. Switching views re-fetches and
// replaces the collection wholesale.
type NotesStore struct {
	mu         sync.Mutex
	notes      *core.NoteService
	categories *core.CategoryService
	logger     *slog.Logger

	view       View
	filter     string // category ID, "" = unfiltered; only valid in active view
	collection []core.Note
	loading    bool
	lastErr    error

	broker Broker
}

// NewNotesStore creates a store starting on the active view, empty until
// the first Refresh.
func NewNotesStore(notes *core.NoteService, categories *core.CategoryService, logger *slog.Logger) *NotesStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotesStore{
		notes:      notes,
		categories: categories,
		logger:     logger,
		view:       ViewActive,
	}
}

// begin flips the store into loading and clears the previous error.
func (s *NotesStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()
}

// finish always resets loading, whatever the outcome. On failure the error
// is recorded and the collection left untouched.
func (s *NotesStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err
	}
	s.mu.Unlock()
}

// Refresh re-fetches the collection for the current view (and filter) and
// replaces it.
func (s *NotesStore) Refresh(ctx context.Context) error {
	s.begin()
	var err error
	defer func() { s.finish(err) }()

	s.mu.Lock()
	view, filter := s.view, s.filter
	s.mu.Unlock()

	var fetched []core.Note
	switch {
	case view == ViewArchived:
		fetched, err = s.notes.ArchivedNotes(ctx)
	case filter != "":
		fetched, err = s.categories.NotesByCategory(ctx, filter)
	default:
		fetched, err = s.notes.ActiveNotes(ctx)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.collection = fetched
	s.mu.Unlock()
	s.publish(core.EventRefresh, "")
	return nil
}

// SetView switches between the active and archived collections and
// re-fetches. Entering the archived view drops any category filter: the
// archived set is always shown unfiltered.
func (s *NotesStore) SetView(ctx context.Context, view View) error {
	s.mu.Lock()
	s.view = view
	s.filter = ""
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// SetFilter narrows the active view to one category and re-fetches.
// Rejected outright while the archived view is selected.
func (s *NotesStore) SetFilter(ctx context.Context, categoryID string) error {
	s.mu.Lock()
	if s.view == ViewArchived {
		s.mu.Unlock()
		return ErrFilterArchived
	}
	s.filter = categoryID
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// ClearFilter returns the active view to the unfiltered collection.
func (s *NotesStore) ClearFilter(ctx context.Context) error {
	s.mu.Lock()
	s.filter = ""
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// Create persists a new note and prepends it to the collection, so it shows
// at the head like a fresh fetch would.
func (s *NotesStore) Create(ctx context.Context, in core.CreateNoteInput) (core.Note, error) {
	s.begin()
	note, err := s.notes.CreateNote(ctx, in)
	s.finish(err)
	if err != nil {
		return core.Note{}, err
	}

	s.mu.Lock()
	s.collection = append([]core.Note{note}, s.collection...)
	s.mu.Unlock()
	s.publish(core.EventCreate, note.ID)
	return note, nil
}

// Update replaces the note in the collection with the server's version.
func (s *NotesStore) Update(ctx context.Context, id string, in core.UpdateNoteInput) (core.Note, error) {
	s.begin()
	note, err := s.notes.UpdateNote(ctx, id, in)
	s.finish(err)
	if err != nil {
		return core.Note{}, err
	}

	s.mu.Lock()
	for i := range s.collection {
		if s.collection[i].ID == id {
			s.collection[i] = note
			break
		}
	}
	s.mu.Unlock()
	s.publish(core.EventModify, id)
	return note, nil
}

// Delete removes the note from whichever collection currently holds it.
func (s *NotesStore) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.notes.DeleteNote(ctx, id)
	s.finish(err)
	if err != nil {
		return err
	}
	s.remove(id)
	s.publish(core.EventDelete, id)
	return nil
}

// Archive archives the note and drops it from the in-memory collection:
// it no longer belongs to the currently viewed set.
func (s *NotesStore) Archive(ctx context.Context, id string) (core.Note, error) {
	s.begin()
	note, err := s.notes.ArchiveNote(ctx, id)
	s.finish(err)
	if err != nil {
		return core.Note{}, err
	}
	s.remove(id)
	s.publish(core.EventModify, id)
	return note, nil
}

// Unarchive restores the note and drops it from the in-memory collection,
// mirroring Archive.
func (s *NotesStore) Unarchive(ctx context.Context, id string) (core.Note, error) {
	s.begin()
	note, err := s.notes.UnarchiveNote(ctx, id)
	s.finish(err)
	if err != nil {
		return core.Note{}, err
	}
	s.remove(id)
	s.publish(core.EventModify, id)
	return note, nil
}

func (s *NotesStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.collection[:0]
	for _, note := range s.collection {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	s.collection = kept
}

func (s *NotesStore) publish(t core.EventType, id string) {
	s.broker.Publish(core.Event{Type: t, ID: id, Timestamp: time.Now().Unix()})
}

// Notes returns a copy of the current collection.
func (s *NotesStore) Notes() []core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Note, len(s.collection))
	copy(out, s.collection)
	return out
}

// Get returns the note with the given ID from the current collection.
func (s *NotesStore) Get(id string) (core.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, note := range s.collection {
		if note.ID == id {
			return note, true
		}
	}
	return core.Note{}, false
}

// View returns the currently selected view.
func (s *NotesStore) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Filter returns the active category filter, "" when unfiltered.
func (s *NotesStore) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Loading reports whether an operation is in flight.
func (s *NotesStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed operation, nil after
// any successful one.
func (s *NotesStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe returns a channel of change events for reactive views.
func (s *NotesStore) Subscribe() <-chan core.Event {
	return s.broker.Subscribe()
}
