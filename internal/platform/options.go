package platform

import (
	"log/slog"
	"net/http"
	"time"

	"notectl/pkg/core"
	"notectl/pkg/session"
)

// options holds the internal configuration for the app wiring.
type options struct {
	logger       *slog.Logger
	baseURL      string
	dataDir      string
	httpClient   *http.Client
	timeout      time.Duration
	rateLimit    float64
	rateBurst    int
	tokenStore   session.TokenStore
	noteRepo     core.NoteRepository
	categoryRepo core.CategoryRepository
}

// Option defines a functional option for configuring the app.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBaseURL points the app at a remote backend. Empty keeps the app in
// offline mode (local JSON mirror).
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithDataDir sets the directory for the token file and the offline mirror.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithHTTPClient injects a custom transport (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout bounds each request. Zero (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateLimit = rps
		o.rateBurst = burst
	}
}

// WithTokenStore injects a custom token store (e.g. in-memory for tests).
func WithTokenStore(store session.TokenStore) Option {
	return func(o *options) {
		o.tokenStore = store
	}
}

// WithRepositories injects custom repositories, bypassing both the HTTP
// adapter and the local mirror. Used by tests and embedders.
func WithRepositories(notes core.NoteRepository, categories core.CategoryRepository) Option {
	return func(o *options) {
		o.noteRepo = notes
		o.categoryRepo = categories
	}
}
