package platform

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"notectl/internal/config"
	"notectl/pkg/core"
	"notectl/pkg/httpapi"
	"notectl/pkg/localstore"
	"notectl/pkg/session"
	"notectl/pkg/state"
)

// App is the fully wired client: session, services and view-state stores
// sharing one set of repositories.
type App struct {
	Logger     *slog.Logger
	Session    *session.Session
	Notes      *state.NotesStore
	Categories *state.CategoriesStore

	NoteService     *core.NoteService
	CategoryService *core.CategoryService

	// Auth is nil in offline mode.
	Auth *httpapi.Auth

	// Store is the offline mirror, nil when a backend is configured.
	Store *localstore.Store

	Offline bool
}

// New wires the app. With a base URL the repositories speak to the remote
// backend; without one they fall back to the local JSON mirror. The session
// is the client's token source AND its 401 hook, so an expired token clears
// the persisted session without the repositories knowing about it.
func New(opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	dataDir := o.dataDir
	if dataDir == "" {
		dataDir = config.DefaultDir()
	}
	tokenStore := o.tokenStore
	if tokenStore == nil {
		tokenStore = session.NewFileStore(dataDir)
	}

	sess := session.New(tokenStore, nil, logger)

	app := &App{Logger: logger, Session: sess}

	var noteRepo core.NoteRepository
	var categoryRepo core.CategoryRepository
	switch {
	case o.noteRepo != nil && o.categoryRepo != nil:
		noteRepo, categoryRepo = o.noteRepo, o.categoryRepo

	case o.baseURL != "":
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		client := httpapi.NewClient(httpapi.Config{
			BaseURL:        o.baseURL,
			HTTPClient:     httpClient,
			Logger:         logger,
			Tokens:         sess,
			OnUnauthorized: sess.Invalidate,
			RateLimit:      rate.Limit(o.rateLimit),
			Burst:          o.rateBurst,
		})
		app.Auth = httpapi.NewAuth(client)
		sess.SetAuthenticator(app.Auth)
		noteRepo = httpapi.NewNotes(client)
		categoryRepo = httpapi.NewCategories(client)

	default:
		app.Offline = true
		app.Store = localstore.NewStore(dataDir, logger)
		noteRepo = localstore.NewNotes(app.Store)
		categoryRepo = localstore.NewCategories(app.Store)
	}

	app.NoteService = core.NewNoteService(noteRepo)
	app.CategoryService = core.NewCategoryService(categoryRepo)
	app.Notes = state.NewNotesStore(app.NoteService, app.CategoryService, logger)
	app.Categories = state.NewCategoriesStore(app.CategoryService, logger)

	return app, nil
}
