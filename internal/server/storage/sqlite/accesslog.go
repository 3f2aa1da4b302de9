package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
)

// AppendAccessLog appends a log entry, verifying that the referenced
// user exists at insertion time. There is no update or delete path.
func (s *Storage) AppendAccessLog(ctx context.Context, entry *models.AccessLogEntry) (int64, error) {
	query := `
		INSERT INTO access_logs (user_id, action, ip_address, timestamp)
		SELECT ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM users WHERE id = ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		entry.UserID,
		entry.Action,
		entry.IPAddress,
		entry.Timestamp,
		entry.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert access log: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return 0, storage.ErrUserNotFound
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// ListAccessLogs returns up to limit entries joined with the username,
// ordered newest first. The LEFT JOIN keeps rows whose user has been
// deleted; those render with an empty username.
func (s *Storage) ListAccessLogs(ctx context.Context, limit int) ([]*models.AccessLogView, error) {
	query := `
		SELECT al.id, u.username, al.action, al.ip_address, al.timestamp
		FROM access_logs al
		LEFT JOIN users u ON al.user_id = u.id
		ORDER BY al.timestamp DESC, al.id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.AccessLogView
	for rows.Next() {
		entry := &models.AccessLogView{}
		var username, ipAddress sql.NullString

		if err := rows.Scan(&entry.ID, &username, &entry.Action, &ipAddress, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}

		entry.Username = username.String
		entry.IPAddress = ipAddress.String
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate access logs: %w", err)
	}

	return logs, nil
}
