package state

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"notectl/pkg/core"
)

// CategoriesStore holds the user's full category collection.
type CategoriesStore struct {
	mu      sync.Mutex
	svc     *core.CategoryService
	logger  *slog.Logger
	cats    []core.Category
	loading bool
	lastErr error

	broker Broker
}

// NewCategoriesStore creates an empty store; call Refresh to load.
func NewCategoriesStore(svc *core.CategoryService, logger *slog.Logger) *CategoriesStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoriesStore{svc: svc, logger: logger}
}

func (s *CategoriesStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *CategoriesStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err
	}
	s.mu.Unlock()
}

// Refresh re-fetches the full category collection.
func (s *CategoriesStore) Refresh(ctx context.Context) error {
	s.begin()
	cats, err := s.svc.Categories(ctx)
	s.finish(err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cats = cats
	s.mu.Unlock()
	s.broker.Publish(core.Event{Type: core.EventRefresh, Timestamp: time.Now().Unix()})
	return nil
}

// Create persists a new category and re-fetches the collection on success.
// No optimistic insert: the server assigns the ID and the re-fetch makes
// sure we reflect it.
func (s *CategoriesStore) Create(ctx context.Context, name, color string) error {
	s.begin()
	_, err := s.svc.CreateCategory(ctx, name, color)
	s.finish(err)
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Delete removes a category and re-fetches.
func (s *CategoriesStore) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.svc.DeleteCategory(ctx, id)
	s.finish(err)
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Attach links a category to a note, unless local state shows it already
// attached: then it reports (false, nil), an informational no-op rather
// than an error, and no duplicate attach request goes out.
func (s *CategoriesStore) Attach(ctx context.Context, note core.Note, categoryID string) (bool, error) {
	if note.HasCategory(categoryID) {
		s.logger.Debug("category already attached, skipping", "note", note.ID, "category", categoryID)
		return false, nil
	}

	s.begin()
	err := s.svc.AttachCategory(ctx, note.ID, categoryID)
	s.finish(err)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Detach removes the link between a category and a note.
func (s *CategoriesStore) Detach(ctx context.Context, noteID, categoryID string) error {
	s.begin()
	err := s.svc.DetachCategory(ctx, noteID, categoryID)
	s.finish(err)
	return err
}

// NotesByCategory is a pure query: it returns the matching active notes
// without mutating the stored category collection.
func (s *CategoriesStore) NotesByCategory(ctx context.Context, categoryID string) ([]core.Note, error) {
	s.begin()
	notes, err := s.svc.NotesByCategory(ctx, categoryID)
	s.finish(err)
	return notes, err
}

// NoteCategories returns the categories attached to a single note.
func (s *CategoriesStore) NoteCategories(ctx context.Context, noteID string) ([]core.Category, error) {
	s.begin()
	cats, err := s.svc.NoteCategories(ctx, noteID)
	s.finish(err)
	return cats, err
}

// Categories returns a copy of the current collection.
func (s *CategoriesStore) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Category, len(s.cats))
	copy(out, s.cats)
	return out
}

// Find resolves a category by ID or (case-insensitive) name against the
// loaded collection.
func (s *CategoriesStore) Find(idOrName string) (core.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.cats {
		if cat.ID == idOrName {
			return cat, true
		}
	}
	for _, cat := range s.cats {
		if strings.EqualFold(cat.Name, idOrName) {
			return cat, true
		}
	}
	return core.Category{}, false
}

// Loading reports whether an operation is in flight.
func (s *CategoriesStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed operation.
func (s *CategoriesStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe returns a channel of change events for reactive views.
func (s *CategoriesStore) Subscribe() <-chan core.Event {
	return s.broker.Subscribe()
}
