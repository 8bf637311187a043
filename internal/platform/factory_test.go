package platform_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notectl/internal/platform"
	"notectl/pkg/core"
	"notectl/pkg/session"
)

func TestNew_OfflineByDefault(t *testing.T) {
	app, err := platform.New(platform.WithDataDir(t.TempDir()))
	require.NoError(t, err)
	assert.True(t, app.Offline)
	assert.Nil(t, app.Auth)
	require.NotNil(t, app.Store)

	// The offline wiring serves the full note lifecycle from disk.
	require.NoError(t, app.Session.Init())
	ctx := context.Background()
	note, err := app.Notes.Create(ctx, core.CreateNoteInput{Title: "offline", Description: "works"})
	require.NoError(t, err)
	require.NoError(t, app.Notes.Refresh(ctx))
	got, ok := app.Notes.Get(note.ID)
	require.True(t, ok)
	assert.Equal(t, "offline", got.Title)
}

func TestNew_RemoteWiring(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/sign-in":
			w.Write([]byte(`{"statusCode":200,"message":"ok","data":{"accessToken":"tok-1"}}`))
		case "/notes/active":
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Unauthorized"}`))
				return
			}
			w.Write([]byte(`{"statusCode":200,"message":"ok","data":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	app, err := platform.New(
		platform.WithBaseURL(srv.URL),
		platform.WithDataDir(t.TempDir()),
	)
	require.NoError(t, err)
	assert.False(t, app.Offline)
	require.NotNil(t, app.Auth)

	require.NoError(t, app.Session.Init())
	assert.False(t, app.Session.Authenticated())

	ctx := context.Background()
	require.NoError(t, app.Session.Login(ctx, "me@example.com", "pw"))
	assert.True(t, app.Session.Authenticated())

	// The stores use the session's token transparently.
	require.NoError(t, app.Notes.Refresh(ctx))
}

func TestNew_UnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	}))
	defer srv.Close()

	// Seed a stale token, as if persisted by an earlier run.
	dataDir := t.TempDir()
	require.NoError(t, session.NewFileStore(dataDir).Save("stale-token"))

	app, err := platform.New(
		platform.WithBaseURL(srv.URL),
		platform.WithDataDir(dataDir),
	)
	require.NoError(t, err)
	require.NoError(t, app.Session.Init())
	require.True(t, app.Session.Authenticated())

	err = app.Notes.Refresh(context.Background())
	require.ErrorIs(t, err, core.ErrUnauthorized)

	// The 401 hook dropped the session, persisted token included.
	assert.False(t, app.Session.Authenticated())
	assert.Empty(t, app.Session.Token())
	token, err := session.NewFileStore(dataDir).Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
