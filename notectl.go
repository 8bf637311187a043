package notectl

import (
	"log/slog"
	"net/http"
	"time"

	"notectl/internal/platform"
	"notectl/pkg/core"
	"notectl/pkg/session"
	"notectl/pkg/state"
)

// --- Types ---

// Note is a public alias for the domain note entity.
type Note = core.Note

// Category is a public alias for the domain category entity.
type Category = core.Category

// CreateNoteInput carries the fields required to create a note.
type CreateNoteInput = core.CreateNoteInput

// UpdateNoteInput carries a partial note update.
type UpdateNoteInput = core.UpdateNoteInput

// App is the fully wired client: session, services and view-state stores.
type App = platform.App

// View selects the active or archived note collection.
type View = state.View

// Views.
const (
	ViewActive   = state.ViewActive
	ViewArchived = state.ViewArchived
)

// --- Configuration ---

// Option defines a functional option for configuring the app.
type Option = platform.Option

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBaseURL points the app at a remote backend. Empty keeps it offline.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithDataDir sets the directory for the token file and the offline mirror.
func WithDataDir(dir string) Option {
	return platform.WithDataDir(dir)
}

// WithHTTPClient injects a custom transport.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithTimeout bounds each request. Zero (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithRateLimit caps outgoing requests per second. Zero disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return platform.WithRateLimit(rps, burst)
}

// WithTokenStore injects a custom token store.
func WithTokenStore(store session.TokenStore) Option {
	return platform.WithTokenStore(store)
}

// WithRepositories injects custom repositories, bypassing both adapters.
func WithRepositories(notes core.NoteRepository, categories core.CategoryRepository) Option {
	return platform.WithRepositories(notes, categories)
}

// --- Factory ---

// New wires an App from the given options.
func New(opts ...Option) (*App, error) {
	return platform.New(opts...)
}
