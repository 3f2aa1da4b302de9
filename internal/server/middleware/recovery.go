package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
)

// RecoveryMiddleware intercepts panics, logs the stack trace, reports
// the panic to Sentry when it is configured, and answers with a generic
// 500 so no internal detail reaches the client.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stackTrace := debug.Stack()

					sentry.WithScope(func(scope *sentry.Scope) {
						scope.SetExtra("panic", err)
						scope.SetExtra("path", r.URL.Path)
						sentry.CaptureMessage("panic in request")
					})

					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(stackTrace),
					)

					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
