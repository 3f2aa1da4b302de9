package storage

import (
	"context"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
)

// UserStorage defines interface for credential store persistence
type UserStorage interface {
	// CreateUser inserts a new user and returns its generated ID
	// Returns ErrUserAlreadyExists if the username is taken
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)

	// GetUserByUsername retrieves user by exact username match
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListUsers returns all users ordered newest first
	ListUsers(ctx context.Context) ([]*models.User, error)

	// DeleteUserByUsername deletes a user and reports the number of
	// rows removed (0 when the username does not exist)
	DeleteUserByUsername(ctx context.Context, username string) (int64, error)

	// CountUsers returns the number of registered users
	CountUsers(ctx context.Context) (int64, error)
}
