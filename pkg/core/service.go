package core

import (
	"context"
	"strings"
)

// NoteService handles the business rules for notes: required-field checks
// happen here, before the repository (and therefore before any network or
// disk access). Everything else is delegated.
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// CreateNote validates and persists a new note. Title and description must
// be non-empty after trimming.
func (s *NoteService) CreateNote(ctx context.Context, in CreateNoteInput) (Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Note{}, NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(in.Description) == "" {
		return Note{}, NewValidationError("description", "must not be empty")
	}
	return s.repo.Create(ctx, in)
}

// ActiveNotes returns the non-archived collection in backend order.
// No client-side resort.
func (s *NoteService) ActiveNotes(ctx context.Context) ([]Note, error) {
	return s.repo.Active(ctx)
}

// ArchivedNotes returns the archived collection in backend order.
func (s *NoteService) ArchivedNotes(ctx context.Context) ([]Note, error) {
	return s.repo.Archived(ctx)
}

// UpdateNote applies a partial update. A supplied field must be non-empty
// after trimming; nil fields are left untouched.
func (s *NoteService) UpdateNote(ctx context.Context, id string, in UpdateNoteInput) (Note, error) {
	if id == "" {
		return Note{}, NewValidationError("id", "must not be empty")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return Note{}, NewValidationError("title", "must not be empty")
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return Note{}, NewValidationError("description", "must not be empty")
	}
	return s.repo.Update(ctx, id, in)
}

// DeleteNote removes a note permanently.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError("id", "must not be empty")
	}
	return s.repo.Delete(ctx, id)
}

// ArchiveNote moves a note into the archive.
func (s *NoteService) ArchiveNote(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, NewValidationError("id", "must not be empty")
	}
	return s.repo.Archive(ctx, id)
}

// UnarchiveNote restores a note from the archive.
func (s *NoteService) UnarchiveNote(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, NewValidationError("id", "must not be empty")
	}
	return s.repo.Unarchive(ctx, id)
}
