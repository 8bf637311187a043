package core

import (
	"context"
	"strings"
)

// CategoryService handles the business rules for categories and the
// note-category relation.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory validates and persists a new category. Duplicate names are
// rejected by the repository with ErrCategoryExists.
func (s *CategoryService) CreateCategory(ctx context.Context, name, color string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(color) == "" {
		return Category{}, NewValidationError("color", "must not be empty")
	}
	return s.repo.Create(ctx, name, color)
}

// Categories returns all categories of the current user.
func (s *CategoryService) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

// DeleteCategory removes a category. No UI path exercises this today, but
// the repository contract supports it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError("id", "must not be empty")
	}
	return s.repo.Delete(ctx, id)
}

// AttachCategory links a category to a note. The repository call is not
// idempotent; callers that want to avoid duplicate attach attempts must
// check local state first (the state layer does).
func (s *CategoryService) AttachCategory(ctx context.Context, noteID, categoryID string) error {
	if noteID == "" {
		return NewValidationError("note id", "must not be empty")
	}
	if categoryID == "" {
		return NewValidationError("category id", "must not be empty")
	}
	return s.repo.Attach(ctx, noteID, categoryID)
}

// DetachCategory removes the link between a category and a note.
func (s *CategoryService) DetachCategory(ctx context.Context, noteID, categoryID string) error {
	if noteID == "" {
		return NewValidationError("note id", "must not be empty")
	}
	if categoryID == "" {
		return NewValidationError("category id", "must not be empty")
	}
	return s.repo.Detach(ctx, noteID, categoryID)
}

// NoteCategories returns the categories attached to a single note.
func (s *CategoryService) NoteCategories(ctx context.Context, noteID string) ([]Category, error) {
	if noteID == "" {
		return nil, NewValidationError("note id", "must not be empty")
	}
	return s.repo.ForNote(ctx, noteID)
}

// NotesByCategory returns the active notes carrying the given category.
// Archived notes are never part of the result; that is backend policy and
// mirrored by the local store.
func (s *CategoryService) NotesByCategory(ctx context.Context, categoryID string) ([]Note, error) {
	if categoryID == "" {
		return nil, NewValidationError("category id", "must not be empty")
	}
	return s.repo.FilterNotes(ctx, categoryID)
}
