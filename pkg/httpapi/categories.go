package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"notectl/pkg/core"
)

// Categories implements core.CategoryRepository against the remote API.
type Categories struct {
	c *Client
}

// NewCategories creates the remote category repository.
func NewCategories(c *Client) *Categories {
	return &Categories{c: c}
}

var _ core.CategoryRepository = (*Categories)(nil)

type categoryPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Create POSTs a new category. A duplicate name is surfaced as
// core.ErrCategoryExists so callers can show a targeted message.
func (r *Categories) Create(ctx context.Context, name, color string) (core.Category, error) {
	raw, err := r.c.Post(ctx, "/categories", categoryPayload{Name: name, Color: color})
	if err != nil {
		var re *core.RequestError
		if errors.As(err, &re) && isDuplicate(re) {
			return core.Category{}, fmt.Errorf("%w: %s", core.ErrCategoryExists, re.Message)
		}
		return core.Category{}, err
	}
	var cat core.Category
	if err := unwrap(raw, &cat); err != nil {
		return core.Category{}, err
	}
	return cat, nil
}

// isDuplicate recognizes the backend's duplicate-name rejection. The API
// reports it through the message string, not a dedicated code.
func isDuplicate(re *core.RequestError) bool {
	if re.Status == http.StatusConflict {
		return true
	}
	return strings.Contains(strings.ToLower(re.Message), "already exists")
}

// List returns all categories of the current user.
func (r *Categories) List(ctx context.Context) ([]core.Category, error) {
	raw, err := r.c.Get(ctx, "/categories")
	if err != nil {
		return nil, err
	}
	var cats []core.Category
	if err := unwrap(raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Delete removes a category.
func (r *Categories) Delete(ctx context.Context, id string) error {
	_, err := r.c.Delete(ctx, "/categories/"+url.PathEscape(id))
	return err
}

// Attach links a category to a note. Not idempotent on the wire; the state
// layer checks local state before calling.
func (r *Categories) Attach(ctx context.Context, noteID, categoryID string) error {
	path := "/categories/" + url.PathEscape(noteID) + "/add/" + url.PathEscape(categoryID)
	_, err := r.c.Post(ctx, path, nil)
	return err
}

// Detach removes the link between a category and a note.
func (r *Categories) Detach(ctx context.Context, noteID, categoryID string) error {
	path := "/categories/" + url.PathEscape(noteID) + "/remove/" + url.PathEscape(categoryID)
	_, err := r.c.Delete(ctx, path)
	return err
}

// ForNote returns the categories attached to a single note.
func (r *Categories) ForNote(ctx context.Context, noteID string) ([]core.Category, error) {
	raw, err := r.c.Get(ctx, "/categories/note/"+url.PathEscape(noteID))
	if err != nil {
		return nil, err
	}
	var cats []core.Category
	if err := unwrap(raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// FilterNotes returns the active notes carrying the given category.
func (r *Categories) FilterNotes(ctx context.Context, categoryID string) ([]core.Note, error) {
	raw, err := r.c.Get(ctx, "/categories/filter/"+url.PathEscape(categoryID))
	if err != nil {
		return nil, err
	}
	var notes []core.Note
	if err := unwrap(raw, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
