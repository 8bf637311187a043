// Package notectl is the Composition Root for the notectl application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (HTTP backend, local JSON mirror) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// notectl is a terminal client for a notes backend: registration and sign-in,
// note CRUD with archive/unarchive, and colored categories attachable to
// notes. The core is agnostic to where notes live: when no backend is
// configured the same contracts are served from a local JSON mirror, so the
// whole CLI works offline.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from transport details.
//   - **Explicit Session**: One persisted bearer token with a clear lifecycle,
//     invalidated exactly once when the backend rejects it.
//   - **View-State Stores**: The note and category collections live in stores
//     with loading/error flags and change events for reactive views.
//   - **Default Adapter (HTTP)**: Speaks the backend's REST dialect with a
//     fixed {statusCode, message, data} envelope.
//   - **Offline Adapter (JSON mirror)**: Same contracts against local files,
//     with filesystem change watching.
//
// Usage:
//
//	// Wire the app with functional options
//	app, err := notectl.New(
//		notectl.WithBaseURL("https://notes.example.com"),
//		notectl.WithLogger(logger),
//	)
//
//	// Load the persisted session and fetch notes
//	_ = app.Session.Init()
//	err = app.Notes.Refresh(ctx)
package notectl
