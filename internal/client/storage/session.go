package storage

import (
	"context"

	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// SessionStorage defines the client-side persistence for the session.
// Token and user record are stored independently so that either can be
// missing on its own; the gate treats the session as valid only when
// both are present.
type SessionStorage interface {
	// SaveSession stores the token and user record
	SaveSession(ctx context.Context, token string, user api.UserSummary) error

	// GetToken retrieves the stored token
	// Returns ErrSessionNotFound if no token exists
	GetToken(ctx context.Context) (string, error)

	// GetUser retrieves the stored user record.
	// Returns ErrSessionNotFound if no record exists and
	// ErrSessionCorrupted if the record does not parse.
	GetUser(ctx context.Context) (api.UserSummary, error)

	// ClearSession removes token and user record (logout)
	ClearSession(ctx context.Context) error
}
