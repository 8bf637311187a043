package core

import "context"

// NoteRepository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the core independent of the underlying
// transport (remote HTTP API, local JSON mirror).
type NoteRepository interface {
	// Create persists a new note and returns it with server-assigned fields.
	Create(ctx context.Context, in CreateNoteInput) (Note, error)

	// Active returns all non-archived notes, in backend order.
	Active(ctx context.Context) ([]Note, error)

	// Archived returns all archived notes, in backend order.
	Archived(ctx context.Context) ([]Note, error)

	// Update applies a partial update and returns the updated note.
	Update(ctx context.Context, id string, in UpdateNoteInput) (Note, error)

	// Delete removes a note permanently.
	Delete(ctx context.Context, id string) error

	// Archive moves a note into the archive and returns the updated note.
	Archive(ctx context.Context, id string) (Note, error)

	// Unarchive restores a note from the archive and returns the updated note.
	Unarchive(ctx context.Context, id string) (Note, error)
}

// CategoryRepository defines the contract for categories and the
// note-category relation.
type CategoryRepository interface {
	// Create persists a new category and returns it with its assigned ID.
	Create(ctx context.Context, name, color string) (Category, error)

	// List returns all categories of the current user.
	List(ctx context.Context) ([]Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id string) error

	// Attach links a category to a note.
	Attach(ctx context.Context, noteID, categoryID string) error

	// Detach removes the link between a category and a note.
	Detach(ctx context.Context, noteID, categoryID string) error

	// ForNote returns the categories attached to a single note.
	ForNote(ctx context.Context, noteID string) ([]Category, error)

	// FilterNotes returns the active notes carrying the given category.
	FilterNotes(ctx context.Context, categoryID string) ([]Note, error)
}

// Watchable is implemented by repositories that can report out-of-band
// changes to their backing store (e.g. the local JSON mirror being edited
// by another process).
type Watchable interface {
	// Watch emits an event for every change matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
