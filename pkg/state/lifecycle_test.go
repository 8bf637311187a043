package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notectl/pkg/core"
	"notectl/pkg/state"
)

func TestSource_PumpsStoreEvents(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := state.NewSource(notes.Subscribe())
	require.NoError(t, src.Start(ctx))

	note, err := notes.Create(ctx, core.CreateNoteInput{Title: "evt", Description: "x"})
	require.NoError(t, err)

	select {
	case e := <-src.Events():
		assert.Contains(t, e.String(), note.ID)
	case <-time.After(time.Second):
		t.Fatal("no lifecycle event received")
	}
}

func TestSource_ClosesOnCancel(t *testing.T) {
	notes, _, _ := setupStores(t)
	ctx, cancel := context.WithCancel(context.Background())

	src := state.NewSource(notes.Subscribe())
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "event channel should close after cancellation")
	case <-time.After(time.Second):
		t.Fatal("event channel did not close")
	}
}
