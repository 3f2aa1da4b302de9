package storage

import (
	"context"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
)

// AccessLogStorage defines interface for the append-only access log.
// Entries are never updated or deleted; they may outlive the user they
// reference.
type AccessLogStorage interface {
	// AppendAccessLog appends a log entry and returns its generated ID.
	// The referenced user must exist at insertion time.
	AppendAccessLog(ctx context.Context, entry *models.AccessLogEntry) (int64, error)

	// ListAccessLogs returns up to limit entries joined with the
	// username, ordered newest first
	ListAccessLogs(ctx context.Context, limit int) ([]*models.AccessLogView, error)
}
