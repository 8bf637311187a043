package localstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"notectl/pkg/core"
	"notectl/pkg/localstore"
)

func setup(t *testing.T) (*localstore.Notes, *localstore.Categories, string) {
	t.Helper()
	dir := t.TempDir()
	store := localstore.NewStore(dir, nil)
	return localstore.NewNotes(store), localstore.NewCategories(store), dir
}

func TestNotes_CreateAndList(t *testing.T) {
	notes, _, dir := setup(t)
	ctx := context.Background()

	first, err := notes.Create(ctx, core.CreateNoteInput{Title: "first", Description: "a"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	second, err := notes.Create(ctx, core.CreateNoteInput{Title: "second", Description: "b"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	active, err := notes.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(active))
	}
	if active[0].ID != second.ID {
		t.Fatal("expected the newest note at the head")
	}

	// The mirror file exists on disk after the first write.
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); err != nil {
		t.Fatalf("notes.json missing: %v", err)
	}
}

func TestNotes_ArchiveFlow(t *testing.T) {
	notes, _, _ := setup(t)
	ctx := context.Background()

	note, _ := notes.Create(ctx, core.CreateNoteInput{Title: "n", Description: "d"})

	archived, err := notes.Archive(ctx, note.ID)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if !archived.Archived {
		t.Fatal("expected the archived flag set")
	}

	active, _ := notes.Active(ctx)
	if len(active) != 0 {
		t.Fatal("archived note still listed as active")
	}
	arch, _ := notes.Archived(ctx)
	if len(arch) != 1 {
		t.Fatal("archived note missing from the archive")
	}

	restored, err := notes.Unarchive(ctx, note.ID)
	if err != nil {
		t.Fatalf("Unarchive failed: %v", err)
	}
	if restored.Archived {
		t.Fatal("expected the archived flag cleared")
	}
}

func TestNotes_UpdateTouchesTimestamp(t *testing.T) {
	notes, _, _ := setup(t)
	ctx := context.Background()

	note, _ := notes.Create(ctx, core.CreateNoteInput{Title: "n", Description: "d"})
	time.Sleep(10 * time.Millisecond)

	title := "renamed"
	updated, err := notes.Update(ctx, note.ID, core.UpdateNoteInput{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "renamed" || updated.Description != "d" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}
	if !updated.UpdatedAt.After(note.UpdatedAt) {
		t.Fatal("expected UpdatedAt to move forward")
	}
	if !updated.CreatedAt.Equal(note.CreatedAt) {
		t.Fatal("CreatedAt must not change on update")
	}
}

func TestNotes_DeleteUnknown(t *testing.T) {
	notes, _, _ := setup(t)

	err := notes.Delete(context.Background(), "ghost")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategories_DuplicateName(t *testing.T) {
	_, cats, _ := setup(t)
	ctx := context.Background()

	if _, err := cats.Create(ctx, "Work", "#f00"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := cats.Create(ctx, "WORK", "#0f0")
	if !errors.Is(err, core.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategories_AttachIsIdempotent(t *testing.T) {
	notes, cats, _ := setup(t)
	ctx := context.Background()

	note, _ := notes.Create(ctx, core.CreateNoteInput{Title: "n", Description: "d"})
	cat, _ := cats.Create(ctx, "Work", "#f00")

	if err := cats.Attach(ctx, note.ID, cat.ID); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := cats.Attach(ctx, note.ID, cat.ID); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}

	got, err := cats.ForNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("ForNote failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 attached category, got %d", len(got))
	}
}

func TestCategories_FilterExcludesArchived(t *testing.T) {
	notes, cats, _ := setup(t)
	ctx := context.Background()

	tagged, _ := notes.Create(ctx, core.CreateNoteInput{Title: "tagged", Description: "d"})
	_, _ = notes.Create(ctx, core.CreateNoteInput{Title: "plain", Description: "d"})
	cat, _ := cats.Create(ctx, "Work", "#f00")
	if err := cats.Attach(ctx, tagged.ID, cat.ID); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	matched, err := cats.FilterNotes(ctx, cat.ID)
	if err != nil {
		t.Fatalf("FilterNotes failed: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != tagged.ID {
		t.Fatalf("unexpected filter result: %+v", matched)
	}

	if _, err := notes.Archive(ctx, tagged.ID); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	matched, _ = cats.FilterNotes(ctx, cat.ID)
	if len(matched) != 0 {
		t.Fatal("archived note must not match a category filter")
	}
}

func TestCategories_DeleteDetachesEverywhere(t *testing.T) {
	notes, cats, _ := setup(t)
	ctx := context.Background()

	note, _ := notes.Create(ctx, core.CreateNoteInput{Title: "n", Description: "d"})
	cat, _ := cats.Create(ctx, "Temp", "#f00")
	if err := cats.Attach(ctx, note.ID, cat.ID); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := cats.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := cats.ForNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("ForNote failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatal("deleted category still attached to a note")
	}

	list, _ := cats.List(ctx)
	if len(list) != 0 {
		t.Fatal("deleted category still listed")
	}
}

func TestStore_WatchSeesExternalWrites(t *testing.T) {
	dir := t.TempDir()
	store := localstore.NewStore(dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx, "*.json")
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Simulate another process editing the mirror.
	if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte("[]"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case ev := <-events:
		if ev.ID != "notes.json" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no watch event received")
	}
}
