package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry enables error reporting when a DSN is configured.
// An empty DSN is a no-op, not an error.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
}

// FlushSentry drains pending events on shutdown
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
