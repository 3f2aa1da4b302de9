package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"database/sql"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
)

// CreateUser inserts a new user and returns its generated ID
func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (username, password, created_at)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, username, passwordHash, time.Now().UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return 0, storage.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// GetUserByUsername retrieves user by exact username match
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, created_at
		FROM users
		WHERE username = ?
	`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ListUsers returns all users ordered newest first
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, password, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// DeleteUserByUsername deletes a user by username
// Returns the number of rows removed (0 when the username does not exist)
func (s *Storage) DeleteUserByUsername(ctx context.Context, username string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// CountUsers returns the number of registered users
func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
