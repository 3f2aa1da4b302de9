package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id, err := s.CreateUser(ctx, "admin", "$2a$10$hash")
	require.NoError(t, err)
	assert.Positive(t, id)

	user, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.CreateUser(ctx, "duplicate", "hash1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "duplicate", "hash2")
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	// No second row was inserted
	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserStorage_GetUserByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByUsername_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.CreateUser(ctx, "Admin", "hash")
	require.NoError(t, err)

	_, err = s.GetUserByUsername(ctx, "admin")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	user, err := s.GetUserByUsername(ctx, "Admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Username)
}

func TestUserStorage_ListUsers_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.CreateUser(ctx, name, "hash")
		require.NoError(t, err)
	}

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
	assert.Equal(t, "first", users[2].Username)
}

func TestUserStorage_DeleteUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.CreateUser(ctx, "victim", "hash")
	require.NoError(t, err)

	rows, err := s.DeleteUserByUsername(ctx, "victim")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = s.GetUserByUsername(ctx, "victim")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Deleting again reports zero rows, not an error
	rows, err = s.DeleteUserByUsername(ctx, "victim")
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestUserStorage_CountUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = s.CreateUser(ctx, "someone", "hash")
	require.NoError(t, err)

	count, err = s.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

// Helper functions

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// In-memory database keeps the tests hermetic
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}
