package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrSessionCorrupted indicates that the stored user record does
	// not parse
	ErrSessionCorrupted = errors.New("session data is corrupted")
)
