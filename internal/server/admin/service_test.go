package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
	"github.com/guivini-ac/pbi-autenticate/internal/server/auth"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage/sqlite"
)

// The admin service runs against the real sqlite store: the interesting
// behaviour (uniqueness, ordering, join survival) lives in SQL.
func setupService(t *testing.T) (*Service, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewService(store, store), store
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc, store := setupService(t)

	id, err := svc.CreateUser(ctx, "operador", "senha123")
	require.NoError(t, err)
	assert.Positive(t, id)

	user, err := store.GetUserByUsername(ctx, "operador")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, auth.BcryptCost, cost)
}

func TestCreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, store := setupService(t)

	_, err := svc.CreateUser(ctx, "admin", "senha123")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "admin", "outrasenha")
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	// No row was inserted for the failed attempt
	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateUser_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.CreateUser(ctx, "a!", "senha123")
	assert.Error(t, err)

	_, err = svc.CreateUser(ctx, "valido", "abc")
	assert.Error(t, err)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.CreateUser(ctx, "temporario", "senha123")
	require.NoError(t, err)

	rows, err := svc.DeleteUser(ctx, "temporario")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = svc.DeleteUser(ctx, "temporario")
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestListUsers_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, name := range []string{"primeiro", "segundo"} {
		_, err := svc.CreateUser(ctx, name, "senha123")
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "segundo", users[0].Username)
	assert.Equal(t, "primeiro", users[1].Username)
}

func TestListAccessLogs_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	svc, store := setupService(t)

	id, err := svc.CreateUser(ctx, "admin", "senha123")
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		_, err := store.AppendAccessLog(ctx, &models.AccessLogEntry{
			UserID:    id,
			Action:    models.ActionLoginSuccess,
			IPAddress: "10.0.0.1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	// Zero and negative limits fall back to 10
	logs, err := svc.ListAccessLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 10)

	logs, err = svc.ListAccessLogs(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, logs, 5)
	assert.Equal(t, "admin", logs[0].Username)
}
