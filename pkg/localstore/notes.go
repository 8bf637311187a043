package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notectl/pkg/core"
)

// Notes implements core.NoteRepository on top of the JSON mirror.
type Notes struct {
	s *Store
}

// NewNotes creates the offline note repository.
func NewNotes(s *Store) *Notes {
	return &Notes{s: s}
}

var _ core.NoteRepository = (*Notes)(nil)

// Create assigns an ID and timestamps locally and prepends the note, so the
// newest note sits at the head like the backend's ordering.
func (n *Notes) Create(ctx context.Context, in core.CreateNoteInput) (core.Note, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(n.s.notesPath(), &notes); err != nil {
		return core.Note{}, err
	}

	now := time.Now().UTC()
	note := core.Note{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Archived:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	notes = append([]core.Note{note}, notes...)

	if err := saveJSON(n.s.notesPath(), notes); err != nil {
		return core.Note{}, err
	}
	n.s.logger.Debug("note created", "id", note.ID)
	return note, nil
}

// Active returns the non-archived notes.
func (n *Notes) Active(ctx context.Context) ([]core.Note, error) {
	return n.filtered(func(note core.Note) bool { return !note.Archived })
}

// Archived returns the archived notes.
func (n *Notes) Archived(ctx context.Context) ([]core.Note, error) {
	return n.filtered(func(note core.Note) bool { return note.Archived })
}

func (n *Notes) filtered(keep func(core.Note) bool) ([]core.Note, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(n.s.notesPath(), &notes); err != nil {
		return nil, err
	}
	result := make([]core.Note, 0, len(notes))
	for _, note := range notes {
		if keep(note) {
			result = append(result, note)
		}
	}
	return result, nil
}

// Update applies the supplied fields and refreshes the update timestamp.
func (n *Notes) Update(ctx context.Context, id string, in core.UpdateNoteInput) (core.Note, error) {
	return n.mutate(id, func(note *core.Note) {
		if in.Title != nil {
			note.Title = *in.Title
		}
		if in.Description != nil {
			note.Description = *in.Description
		}
	})
}

// Delete removes a note permanently.
func (n *Notes) Delete(ctx context.Context, id string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(n.s.notesPath(), &notes); err != nil {
		return err
	}
	kept := notes[:0]
	found := false
	for _, note := range notes {
		if note.ID == id {
			found = true
			continue
		}
		kept = append(kept, note)
	}
	if !found {
		return fmt.Errorf("note %s: %w", id, core.ErrNotFound)
	}
	return saveJSON(n.s.notesPath(), kept)
}

// Archive flags a note as archived.
func (n *Notes) Archive(ctx context.Context, id string) (core.Note, error) {
	return n.mutate(id, func(note *core.Note) { note.Archived = true })
}

// Unarchive clears the archive flag.
func (n *Notes) Unarchive(ctx context.Context, id string) (core.Note, error) {
	return n.mutate(id, func(note *core.Note) { note.Archived = false })
}

func (n *Notes) mutate(id string, apply func(*core.Note)) (core.Note, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(n.s.notesPath(), &notes); err != nil {
		return core.Note{}, err
	}
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		apply(&notes[i])
		notes[i].UpdatedAt = time.Now().UTC()
		if err := saveJSON(n.s.notesPath(), notes); err != nil {
			return core.Note{}, err
		}
		return notes[i], nil
	}
	return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
}
