package httpapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notectl/pkg/core"
	"notectl/pkg/httpapi"
)

func newNotes(t *testing.T, handler http.HandlerFunc) *httpapi.Notes {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return httpapi.NewNotes(httpapi.NewClient(httpapi.Config{BaseURL: srv.URL}))
}

func TestNotes_ActiveUnwrapsEnvelope(t *testing.T) {
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/active", r.URL.Path)
		w.Write([]byte(`{
			"statusCode": 200,
			"message": "Notes fetched",
			"data": [
				{
					"id": "n1",
					"title": "Shopping",
					"description": "milk",
					"isArchived": false,
					"createdAt": "2026-01-02T10:00:00.000Z",
					"updatedAt": "2026-01-02T10:00:00.000Z",
					"categories": [{"category": {"id": "c1", "name": "Home", "color": "#fff"}}]
				}
			]
		}`))
	})

	got, err := notes.Active(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
	assert.False(t, got[0].Archived)
	require.Len(t, got[0].Categories, 1)
	assert.Equal(t, "Home", got[0].Categories[0].Category.Name)
	assert.True(t, got[0].HasCategory("c1"))
}

func TestNotes_ActiveAcceptsBareArray(t *testing.T) {
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "n1", "title": "t", "description": "d"}]`))
	})

	got, err := notes.Active(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestNotes_MalformedBodyIsDecodeError(t *testing.T) {
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"surprise"`))
	})

	_, err := notes.Active(context.Background())
	var de *core.DecodeError
	require.ErrorAs(t, err, &de)
}

func TestNotes_CreateRequiresID(t *testing.T) {
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"statusCode": 201, "message": "ok", "data": {"title": "no id here"}}`))
	})

	_, err := notes.Create(context.Background(), core.CreateNoteInput{Title: "t", Description: "d"})
	var de *core.DecodeError
	require.ErrorAs(t, err, &de)
}

func TestNotes_ArchiveRoundTrip(t *testing.T) {
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes/n1/archive", r.URL.Path)
		w.Write([]byte(`{"statusCode": 200, "message": "ok", "data": {"id": "n1", "isArchived": true}}`))
	})

	note, err := notes.Archive(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, note.Archived)
}

func TestNotes_UpdateSendsOnlySuppliedFields(t *testing.T) {
	var gotBody string
	notes := newNotes(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"id": "n1", "title": "renamed"}`))
	})

	title := "renamed"
	_, err := notes.Update(context.Background(), "n1", core.UpdateNoteInput{Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "renamed"}`, gotBody)
}
