// Package session keeps track of whether the portal client holds a
// usable session. A session is valid only when both the token and the
// user record are present locally; anything less routes the user back
// to login.
package session

import (
	"context"
	"log/slog"

	"github.com/guivini-ac/pbi-autenticate/internal/client/storage"
	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// State describes what the gate currently knows about the session
type State int

const (
	// StateUnknown means Init has not run yet
	StateUnknown State = iota
	// StateUnauthenticated means no usable session exists locally
	StateUnauthenticated
	// StateAuthenticated means both the token and the user record were found
	StateAuthenticated
)

// LoginClient is the part of the API client the gate needs
type LoginClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
}

// Gate decides whether the client is logged in and performs the
// login/logout transitions against local storage
type Gate struct {
	client LoginClient
	store  storage.SessionStorage
	state  State
	user   api.UserSummary
}

// NewGate creates a gate in the Unknown state. Call Init before using it.
func NewGate(client LoginClient, store storage.SessionStorage) *Gate {
	return &Gate{
		client: client,
		store:  store,
		state:  StateUnknown,
	}
}

// Init restores the session from local storage. A session counts as
// restored only when both the token and the user record are present and
// the user record parses; any other combination clears whatever is left
// and lands in Unauthenticated.
func (g *Gate) Init(ctx context.Context) error {
	_, tokenErr := g.store.GetToken(ctx)
	user, userErr := g.store.GetUser(ctx)

	if tokenErr == nil && userErr == nil {
		g.state = StateAuthenticated
		g.user = user
		return nil
	}

	// Half-written or corrupted sessions are wiped rather than kept around
	if err := g.store.ClearSession(ctx); err != nil {
		slog.Warn("failed to clear stale session", "error", err)
	}

	g.state = StateUnauthenticated
	g.user = api.UserSummary{}
	return nil
}

// Login authenticates against the server and persists the session.
// The returned message is the server's own message. On failure the gate
// stays Unauthenticated and the server's error message is returned as is.
func (g *Gate) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := g.client.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		g.state = StateUnauthenticated
		return "", err
	}

	if err := g.store.SaveSession(ctx, resp.Token, resp.User); err != nil {
		g.state = StateUnauthenticated
		return "", err
	}

	g.state = StateAuthenticated
	g.user = resp.User
	return resp.Message, nil
}

// Logout clears the session unconditionally. Storage errors are logged
// and swallowed so logout always succeeds from the user's point of view.
func (g *Gate) Logout(ctx context.Context) {
	if err := g.store.ClearSession(ctx); err != nil {
		slog.Warn("failed to clear session on logout", "error", err)
	}
	g.state = StateUnauthenticated
	g.user = api.UserSummary{}
}

// IsAuthenticated reports whether the gate is in the Authenticated state
// and both session keys are still present in storage
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	if g.state != StateAuthenticated {
		return false
	}
	if _, err := g.store.GetToken(ctx); err != nil {
		return false
	}
	if _, err := g.store.GetUser(ctx); err != nil {
		return false
	}
	return true
}

// State returns the current gate state
func (g *Gate) State() State {
	return g.state
}

// CurrentUser returns the user of the restored session, valid only when
// the gate is Authenticated
func (g *Gate) CurrentUser() api.UserSummary {
	return g.user
}

// Token returns the stored session token
func (g *Gate) Token(ctx context.Context) (string, error) {
	return g.store.GetToken(ctx)
}
