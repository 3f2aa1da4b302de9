// Package admin implements out-of-band account management. It operates
// directly on the credential store and access log, bypassing the
// authenticator, and unlike the login path it surfaces specific errors
// (duplicate username, user not found) for operability.
package admin

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
	"github.com/guivini-ac/pbi-autenticate/internal/server/auth"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
	"github.com/guivini-ac/pbi-autenticate/internal/validation"
)

// Service provides administrative account operations
type Service struct {
	users storage.UserStorage
	logs  storage.AccessLogStorage
}

// NewService creates a new admin service
func NewService(users storage.UserStorage, logs storage.AccessLogStorage) *Service {
	return &Service{
		users: users,
		logs:  logs,
	}
}

// CreateUser hashes the password at the system work factor and inserts
// a new account. Returns storage.ErrUserAlreadyExists when the username
// is taken, with no row inserted.
func (s *Service) CreateUser(ctx context.Context, username, password string) (int64, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return 0, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), auth.BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteUser removes an account by username and reports the number of
// rows removed: 0 when the username does not exist. Access log entries
// referencing the user are kept.
func (s *Service) DeleteUser(ctx context.Context, username string) (int64, error) {
	return s.users.DeleteUserByUsername(ctx, username)
}

// ListUsers returns all accounts, newest first
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// ListAccessLogs returns up to limit access log entries joined with the
// username, newest first
func (s *Service) ListAccessLogs(ctx context.Context, limit int) ([]*models.AccessLogView, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.logs.ListAccessLogs(ctx, limit)
}
