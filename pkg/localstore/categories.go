package localstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"notectl/pkg/core"
)

// Categories implements core.CategoryRepository on top of the JSON mirror.
type Categories struct {
	s *Store
}

// NewCategories creates the offline category repository.
func NewCategories(s *Store) *Categories {
	return &Categories{s: s}
}

var _ core.CategoryRepository = (*Categories)(nil)

// Create rejects duplicate names with ErrCategoryExists, mirroring the
// backend's per-user uniqueness rule.
func (r *Categories) Create(ctx context.Context, name, color string) (core.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var cats []core.Category
	if err := loadJSON(r.s.categoriesPath(), &cats); err != nil {
		return core.Category{}, err
	}
	for _, cat := range cats {
		if strings.EqualFold(cat.Name, name) {
			return core.Category{}, fmt.Errorf("%w: %s", core.ErrCategoryExists, name)
		}
	}

	cat := core.Category{ID: uuid.NewString(), Name: name, Color: color}
	cats = append(cats, cat)
	if err := saveJSON(r.s.categoriesPath(), cats); err != nil {
		return core.Category{}, err
	}
	r.s.logger.Debug("category created", "id", cat.ID, "name", cat.Name)
	return cat, nil
}

// List returns all categories.
func (r *Categories) List(ctx context.Context) ([]core.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var cats []core.Category
	if err := loadJSON(r.s.categoriesPath(), &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Delete removes a category and detaches it from every note.
func (r *Categories) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var cats []core.Category
	if err := loadJSON(r.s.categoriesPath(), &cats); err != nil {
		return err
	}
	kept := cats[:0]
	found := false
	for _, cat := range cats {
		if cat.ID == id {
			found = true
			continue
		}
		kept = append(kept, cat)
	}
	if !found {
		return fmt.Errorf("category %s: %w", id, core.ErrNotFound)
	}
	if err := saveJSON(r.s.categoriesPath(), kept); err != nil {
		return err
	}

	var notes []core.Note
	if err := loadJSON(r.s.notesPath(), &notes); err != nil {
		return err
	}
	for i := range notes {
		notes[i].Categories = withoutCategory(notes[i].Categories, id)
	}
	return saveJSON(r.s.notesPath(), notes)
}

// Attach links a category to a note. Locally this is idempotent: attaching
// a category that is already present leaves the note unchanged.
func (r *Categories) Attach(ctx context.Context, noteID, categoryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var cats []core.Category
	if err := loadJSON(r.s.categoriesPath(), &cats); err != nil {
		return err
	}
	var category *core.Category
	for i := range cats {
		if cats[i].ID == categoryID {
			category = &cats[i]
			break
		}
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID, core.ErrNotFound)
	}

	return r.mutateNote(noteID, func(note *core.Note) {
		if note.HasCategory(categoryID) {
			return
		}
		note.Categories = append(note.Categories, core.CategoryRelation{Category: *category})
	})
}

// Detach removes the link between a category and a note.
func (r *Categories) Detach(ctx context.Context, noteID, categoryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.mutateNote(noteID, func(note *core.Note) {
		note.Categories = withoutCategory(note.Categories, categoryID)
	})
}

// ForNote returns the categories attached to a single note.
func (r *Categories) ForNote(ctx context.Context, noteID string) ([]core.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(r.s.notesPath(), &notes); err != nil {
		return nil, err
	}
	for _, note := range notes {
		if note.ID != noteID {
			continue
		}
		cats := make([]core.Category, 0, len(note.Categories))
		for _, rel := range note.Categories {
			cats = append(cats, rel.Category)
		}
		return cats, nil
	}
	return nil, fmt.Errorf("note %s: %w", noteID, core.ErrNotFound)
}

// FilterNotes returns the active notes carrying the given category.
// Archived notes never match, same as the backend.
func (r *Categories) FilterNotes(ctx context.Context, categoryID string) ([]core.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var notes []core.Note
	if err := loadJSON(r.s.notesPath(), &notes); err != nil {
		return nil, err
	}
	result := make([]core.Note, 0)
	for _, note := range notes {
		if !note.Archived && note.HasCategory(categoryID) {
			result = append(result, note)
		}
	}
	return result, nil
}

// mutateNote must be called with the store lock held.
func (r *Categories) mutateNote(noteID string, apply func(*core.Note)) error {
	var notes []core.Note
	if err := loadJSON(r.s.notesPath(), &notes); err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		apply(&notes[i])
		notes[i].UpdatedAt = time.Now().UTC()
		return saveJSON(r.s.notesPath(), notes)
	}
	return fmt.Errorf("note %s: %w", noteID, core.ErrNotFound)
}

func withoutCategory(rels []core.CategoryRelation, categoryID string) []core.CategoryRelation {
	kept := rels[:0]
	for _, rel := range rels {
		if rel.Category.ID != categoryID {
			kept = append(kept, rel)
		}
	}
	return kept
}
