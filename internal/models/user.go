package models

import "time"

// ActionLoginSuccess is the action recorded for every successful login.
const ActionLoginSuccess = "LOGIN_SUCCESS"

// User represents an account in the credential store.
// Never mutated after creation except deletion.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// AccessLogEntry is an append-only audit record written on every
// successful authentication.
type AccessLogEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
}

// AccessLogView is a log entry joined with the username for display.
// Username is empty when the user has since been deleted; log rows
// outlive their users for audit purposes.
type AccessLogView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
}
