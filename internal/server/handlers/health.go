package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new handler for health checks
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health handles GET /api/health. No auth required, used as a
// liveness probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Message: "API is up and running",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
