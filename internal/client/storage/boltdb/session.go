package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/guivini-ac/pbi-autenticate/internal/client/storage"
	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// The token and the user record live under separate keys so that one
// can be missing while the other is present. The session gate treats
// such a half-written session as unauthenticated.
var (
	tokenKey = []byte("token")
	userKey  = []byte("user")
)

// SaveSession stores the token and the user record in one transaction
func (s *Storage) SaveSession(ctx context.Context, token string, user api.UserSummary) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user data: %w", err)
		}

		if err := bucket.Put(tokenKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(userKey, data); err != nil {
			return fmt.Errorf("failed to save user data: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored token
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// GetUser retrieves the stored user record
func (s *Storage) GetUser(ctx context.Context) (api.UserSummary, error) {
	var user api.UserSummary

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(userKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		if err := json.Unmarshal(data, &user); err != nil {
			return storage.ErrSessionCorrupted
		}

		return nil
	})

	if err != nil {
		return api.UserSummary{}, err
	}

	return user, nil
}

// ClearSession removes both the token and the user record. Clearing an
// already empty session is not an error.
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(userKey); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}

		return nil
	})
}
