package httpapi

import (
	"context"
	"errors"
	"net/url"

	"notectl/pkg/core"
)

// Notes implements core.NoteRepository against the remote API.
type Notes struct {
	c *Client
}

// NewNotes creates the remote note repository.
func NewNotes(c *Client) *Notes {
	return &Notes{c: c}
}

var _ core.NoteRepository = (*Notes)(nil)

// Create POSTs a new note. The backend assigns the ID and both timestamps.
func (n *Notes) Create(ctx context.Context, in core.CreateNoteInput) (core.Note, error) {
	raw, err := n.c.Post(ctx, "/notes", in)
	if err != nil {
		return core.Note{}, err
	}
	var note core.Note
	if err := unwrap(raw, &note); err != nil {
		return core.Note{}, err
	}
	if note.ID == "" {
		return core.Note{}, &core.DecodeError{Err: errors.New("created note has no id")}
	}
	return note, nil
}

// Active returns the non-archived notes in backend order.
func (n *Notes) Active(ctx context.Context) ([]core.Note, error) {
	return n.list(ctx, "/notes/active")
}

// Archived returns the archived notes in backend order.
func (n *Notes) Archived(ctx context.Context) ([]core.Note, error) {
	return n.list(ctx, "/notes/archived")
}

func (n *Notes) list(ctx context.Context, path string) ([]core.Note, error) {
	raw, err := n.c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var notes []core.Note
	if err := unwrap(raw, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Update PUTs only the supplied fields and returns the updated note.
func (n *Notes) Update(ctx context.Context, id string, in core.UpdateNoteInput) (core.Note, error) {
	raw, err := n.c.Put(ctx, "/notes/"+url.PathEscape(id), in)
	if err != nil {
		return core.Note{}, err
	}
	var note core.Note
	if err := unwrap(raw, &note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}

// Delete removes a note permanently.
func (n *Notes) Delete(ctx context.Context, id string) error {
	_, err := n.c.Delete(ctx, "/notes/"+url.PathEscape(id))
	return err
}

// Archive moves a note into the archive.
func (n *Notes) Archive(ctx context.Context, id string) (core.Note, error) {
	return n.toggle(ctx, id, "archive")
}

// Unarchive restores a note from the archive.
func (n *Notes) Unarchive(ctx context.Context, id string) (core.Note, error) {
	return n.toggle(ctx, id, "unarchive")
}

func (n *Notes) toggle(ctx context.Context, id, verb string) (core.Note, error) {
	raw, err := n.c.Post(ctx, "/notes/"+url.PathEscape(id)+"/"+verb, nil)
	if err != nil {
		return core.Note{}, err
	}
	var note core.Note
	if err := unwrap(raw, &note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}
