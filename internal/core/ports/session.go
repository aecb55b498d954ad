package ports

import (
	"context"

	"github.com/sporthub/webapp/internal/core/domain"
)

// SessionStore is the single source of truth for "who is logged in" and which
// bearer token to attach to requests. It is written only by Login, Register
// and Logout, and read by every view.
type SessionStore interface {
	// Initialize restores a persisted session, once per process. Missing or
	// corrupt persisted data resolves to the signed-out state and clears
	// whatever partial data was there; it is never surfaced as an error.
	Initialize(ctx context.Context)
	// Login authenticates and, on success, persists the session pair and
	// signals navigation to the home view. Failures propagate unchanged.
	Login(ctx context.Context, email, password string) error
	// Register creates an account and immediately logs in with the same
	// credentials. A login failure after successful registration propagates
	// as that login error.
	Register(ctx context.Context, username, email, password string) error
	// Logout clears persisted and in-memory state and signals navigation to
	// the sign-in view. Safe to call when already signed out.
	Logout()
	IsAuthenticated() bool
	// Current returns the token and a copy of the user record, or "" and nil
	// when signed out.
	Current() (string, *domain.User)
}

// StateStore persists the {token, user} pair durably across restarts. The two
// values are written, read and cleared together, never individually.
type StateStore interface {
	Read() (token string, user []byte, err error)
	Write(token string, user []byte) error
	Clear() error
}

// Navigator is the router collaborator receiving fire-and-forget navigation
// signals from the session store.
type Navigator interface {
	NavigateTo(route string)
}
