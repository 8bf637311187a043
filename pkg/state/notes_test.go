package state_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notectl/pkg/core"
	"notectl/pkg/state"
)

// fakeBackend implements both repositories in memory and can be forced to
// fail, so tests can exercise the store's failure handling.
type fakeBackend struct {
	mu         sync.Mutex
	notes      []core.Note
	categories []core.Category
	failWith   error
	seq        int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (f *fakeBackend) fail() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failWith
}

func (f *fakeBackend) Create(ctx context.Context, in core.CreateNoteInput) (core.Note, error) {
	if err := f.fail(); err != nil {
		return core.Note{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	note := core.Note{
		ID:          fmt.Sprintf("note-%d", f.seq),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	f.notes = append([]core.Note{note}, f.notes...)
	return note, nil
}

func (f *fakeBackend) Active(ctx context.Context) ([]core.Note, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []core.Note
	for _, n := range f.notes {
		if !n.Archived {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeBackend) Archived(ctx context.Context) ([]core.Note, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []core.Note
	for _, n := range f.notes {
		if n.Archived {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeBackend) Update(ctx context.Context, id string, in core.UpdateNoteInput) (core.Note, error) {
	if err := f.fail(); err != nil {
		return core.Note{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notes {
		if n.ID == id {
			if in.Title != nil {
				n.Title = *in.Title
			}
			if in.Description != nil {
				n.Description = *in.Description
			}
			f.notes[i] = n
			return n, nil
		}
	}
	return core.Note{}, core.ErrNotFound
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeBackend) setArchived(id string, archived bool) (core.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notes {
		if n.ID == id {
			n.Archived = archived
			f.notes[i] = n
			return n, nil
		}
	}
	return core.Note{}, core.ErrNotFound
}

func (f *fakeBackend) Archive(ctx context.Context, id string) (core.Note, error) {
	if err := f.fail(); err != nil {
		return core.Note{}, err
	}
	return f.setArchived(id, true)
}

func (f *fakeBackend) Unarchive(ctx context.Context, id string) (core.Note, error) {
	if err := f.fail(); err != nil {
		return core.Note{}, err
	}
	return f.setArchived(id, false)
}

func (f *fakeBackend) CreateCategory(ctx context.Context, name, color string) (core.Category, error) {
	if err := f.fail(); err != nil {
		return core.Category{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			return core.Category{}, core.ErrCategoryExists
		}
	}
	f.seq++
	cat := core.Category{ID: fmt.Sprintf("cat-%d", f.seq), Name: name, Color: color}
	f.categories = append(f.categories, cat)
	return cat, nil
}

func (f *fakeBackend) List(ctx context.Context) ([]core.Category, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]core.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, id string) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeBackend) Attach(ctx context.Context, noteID, categoryID string) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notes {
		if n.ID == noteID {
			for _, c := range f.categories {
				if c.ID == categoryID {
					f.notes[i].Categories = append(f.notes[i].Categories, core.CategoryRelation{Category: c})
					return nil
				}
			}
			return core.ErrNotFound
		}
	}
	return core.ErrNotFound
}

func (f *fakeBackend) Detach(ctx context.Context, noteID, categoryID string) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notes {
		if n.ID == noteID {
			kept := n.Categories[:0]
			for _, rel := range n.Categories {
				if rel.Category.ID != categoryID {
					kept = append(kept, rel)
				}
			}
			f.notes[i].Categories = kept
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeBackend) ForNote(ctx context.Context, noteID string) ([]core.Category, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notes {
		if n.ID == noteID {
			var out []core.Category
			for _, rel := range n.Categories {
				out = append(out, rel.Category)
			}
			return out, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeBackend) FilterNotes(ctx context.Context, categoryID string) ([]core.Note, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []core.Note
	for _, n := range f.notes {
		if !n.Archived && n.HasCategory(categoryID) {
			out = append(out, n)
		}
	}
	return out, nil
}

// categoryRepo adapts fakeBackend to core.CategoryRepository without the
// method name clash on Create/Delete.
type categoryRepo struct{ *fakeBackend }

func (r categoryRepo) Create(ctx context.Context, name, color string) (core.Category, error) {
	return r.CreateCategory(ctx, name, color)
}

func (r categoryRepo) Delete(ctx context.Context, id string) error {
	return r.DeleteCategory(ctx, id)
}

func setupStores(t *testing.T) (*state.NotesStore, *state.CategoriesStore, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	noteSvc := core.NewNoteService(backend)
	catSvc := core.NewCategoryService(categoryRepo{backend})
	return state.NewNotesStore(noteSvc, catSvc, nil), state.NewCategoriesStore(catSvc, nil), backend
}

func TestNotesStore_FullLifecycle(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, core.CreateNoteInput{Title: "Shopping", Description: "milk"})
	require.NoError(t, err)
	assert.Len(t, notes.Notes(), 1)

	// Archive drops the note from the active collection.
	_, err = notes.Archive(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, notes.Notes())

	// It shows up in the archived view.
	require.NoError(t, notes.SetView(ctx, state.ViewArchived))
	require.Len(t, notes.Notes(), 1)
	assert.Equal(t, note.ID, notes.Notes()[0].ID)

	// Unarchive drops it from the archived collection in turn.
	_, err = notes.Unarchive(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, notes.Notes())

	require.NoError(t, notes.SetView(ctx, state.ViewActive))
	require.Len(t, notes.Notes(), 1)

	require.NoError(t, notes.Delete(ctx, note.ID))
	assert.Empty(t, notes.Notes())
}

func TestNotesStore_CreatePrepends(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx := context.Background()

	_, err := notes.Create(ctx, core.CreateNoteInput{Title: "first", Description: "x"})
	require.NoError(t, err)
	second, err := notes.Create(ctx, core.CreateNoteInput{Title: "second", Description: "x"})
	require.NoError(t, err)

	got := notes.Notes()
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest note should lead the collection")
}

func TestNotesStore_ValidationLeavesStateClean(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx := context.Background()

	_, err := notes.Create(ctx, core.CreateNoteInput{Title: "  ", Description: "x"})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	// Loading must be reset and the failure recorded for display.
	assert.False(t, notes.Loading())
	assert.ErrorIs(t, notes.Err(), err)
	assert.Empty(t, notes.Notes())
}

func TestNotesStore_FailureKeepsCollection(t *testing.T) {
	notes, _, backend := setupStores(t)
	ctx := context.Background()

	_, err := notes.Create(ctx, core.CreateNoteInput{Title: "keep me", Description: "x"})
	require.NoError(t, err)

	backend.mu.Lock()
	backend.failWith = errors.New("backend down")
	backend.mu.Unlock()

	require.Error(t, notes.Refresh(ctx))
	assert.False(t, notes.Loading())
	assert.Len(t, notes.Notes(), 1, "failed refresh must not clear the collection")

	// The next successful operation clears the recorded error.
	backend.mu.Lock()
	backend.failWith = nil
	backend.mu.Unlock()
	require.NoError(t, notes.Refresh(ctx))
	assert.NoError(t, notes.Err())
}

func TestNotesStore_FilterPolicy(t *testing.T) {
	notes, categories, backend := setupStores(t)
	ctx := context.Background()

	require.NoError(t, categories.Create(ctx, "Work", "#ff0000"))
	cat := categories.Categories()[0]

	tagged, err := notes.Create(ctx, core.CreateNoteInput{Title: "tagged", Description: "x"})
	require.NoError(t, err)
	_, err = notes.Create(ctx, core.CreateNoteInput{Title: "plain", Description: "x"})
	require.NoError(t, err)
	require.NoError(t, backend.Attach(ctx, tagged.ID, cat.ID))

	// Filtering narrows the active view to notes carrying the category.
	require.NoError(t, notes.SetFilter(ctx, cat.ID))
	got := notes.Notes()
	require.Len(t, got, 1)
	assert.Equal(t, tagged.ID, got[0].ID)

	// Archived notes never appear in a filtered result.
	_, err = backend.Archive(ctx, tagged.ID)
	require.NoError(t, err)
	require.NoError(t, notes.Refresh(ctx))
	assert.Empty(t, notes.Notes())

	// The filter is rejected while the archived view is selected.
	require.NoError(t, notes.SetView(ctx, state.ViewArchived))
	err = notes.SetFilter(ctx, cat.ID)
	assert.ErrorIs(t, err, state.ErrFilterArchived)

	// Switching views drops the filter.
	require.NoError(t, notes.SetView(ctx, state.ViewActive))
	assert.Empty(t, notes.Filter())
}

func TestNotesStore_Events(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx := context.Background()
	events := notes.Subscribe()

	note, err := notes.Create(ctx, core.CreateNoteInput{Title: "evt", Description: "x"})
	require.NoError(t, err)

	select {
	case e := <-events:
		assert.Equal(t, core.EventCreate, e.Type)
		assert.Equal(t, note.ID, e.ID)
	case <-time.After(time.Second):
		t.Fatal("no event received for create")
	}
}
