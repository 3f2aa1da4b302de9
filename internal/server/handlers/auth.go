package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/guivini-ac/pbi-autenticate/internal/server/auth"
	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// Authenticator is the credential-checking contract the login handler
// depends on
type Authenticator interface {
	Authenticate(ctx context.Context, username, password, originAddr string) (*auth.Result, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	logger *slog.Logger
	auth   Authenticator
}

// NewAuthHandler creates a new handler for authentication
func NewAuthHandler(logger *slog.Logger, authenticator Authenticator) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   authenticator,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.auth.Authenticate(ctx, req.Username, req.Password, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.WarnContext(ctx, "login failed", slog.String("username", req.Username))
			h.sendError(w, err.Error(), http.StatusUnauthorized)
		default:
			// Storage detail stays server-side, the caller gets a
			// generic message
			h.logger.ErrorContext(ctx, "login error", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", result.User.Username),
		slog.Int64("user_id", result.User.ID))

	resp := api.LoginResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    result.User,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON writes a JSON response
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Message: message}, statusCode)
}

// clientIP extracts the client address from the request, honoring
// X-Forwarded-For and X-Real-IP set by proxies
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for idx := 0; idx < len(xff); idx++ {
			if xff[idx] == ',' {
				return xff[:idx]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
