// Package session owns the auth lifecycle: one bearer token, persisted
// across runs, with explicit state transitions instead of ambient globals.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"notectl/pkg/core"
)

// Status is the session lifecycle state.
type Status int

const (
	// StatusUninitialized means Init has not run yet.
	StatusUninitialized Status = iota
	// StatusAuthenticated means a token is loaded.
	StatusAuthenticated
	// StatusUnauthenticated means no token is available. A valid state.
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "uninitialized"
	}
}

// TokenStore persists the bearer token across runs. Implementations must
// treat "no token" as a normal outcome of Load, not an error.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Authenticator exchanges credentials for a bearer token.
// Satisfied by httpapi.Auth.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Session is the explicitly-scoped auth state: init reads the persisted
// token, Login/Logout mutate and persist. It doubles as the TokenSource of
// the HTTP client, so the persisted store and the request path always agree
// on one storage location.
type Session struct {
	mu          sync.Mutex
	store       TokenStore
	auth        Authenticator
	logger      *slog.Logger
	status      Status
	token       string
	invalidated bool
}

// New creates a Session. auth may be nil in offline mode; Login then fails.
func New(store TokenStore, auth Authenticator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, auth: auth, logger: logger}
}

// SetAuthenticator wires the sign-in endpoint in after construction. The
// HTTP client and the session reference each other (token source one way,
// sign-in the other), so one side has to be attached late.
func (s *Session) SetAuthenticator(auth Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// Init loads the persisted token and settles the session into
// authenticated or unauthenticated. Safe to call more than once.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load persisted token: %w", err)
	}
	s.token = token
	if token == "" {
		s.status = StatusUnauthenticated
	} else {
		s.status = StatusAuthenticated
	}
	s.logger.Debug("session initialized", "status", s.status.String())
	return nil
}

// Login signs in, persists the received token and transitions to
// authenticated. On failure the previous state is untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	auth := s.auth
	s.mu.Unlock()
	if auth == nil {
		return fmt.Errorf("login requires a configured backend: %w", core.ErrNoSession)
	}
	token, err := auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.token = token
	s.status = StatusAuthenticated
	s.invalidated = false
	s.logger.Info("logged in")
	return nil
}

// Logout clears the persisted token and transitions to unauthenticated
// unconditionally. No server call.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear persisted token: %w", err)
	}
	s.token = ""
	s.status = StatusUnauthenticated
	s.logger.Info("logged out")
	return nil
}

// Invalidate drops the session after the backend rejected the token (401).
// The persisted token is cleared exactly once per login; repeated 401s from
// in-flight requests do not clear it again.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.invalidated || s.token == "" {
		return
	}
	s.invalidated = true
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted token", "err", err)
	}
	s.token = ""
	s.status = StatusUnauthenticated
	s.logger.Warn("session expired, token cleared")
}

// Token implements httpapi.TokenSource. Empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Authenticated reports whether a token is loaded.
func (s *Session) Authenticated() bool {
	return s.Status() == StatusAuthenticated
}
