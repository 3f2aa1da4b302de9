package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// ReportHandler serves the embed link of the Power BI report to
// authenticated clients. The URL is a static public embed link, not a
// Power BI API integration.
type ReportHandler struct {
	logger   *slog.Logger
	embedURL string
}

// NewReportHandler creates a new report handler
func NewReportHandler(logger *slog.Logger, embedURL string) *ReportHandler {
	return &ReportHandler{
		logger:   logger,
		embedURL: embedURL,
	}
}

// Report handles GET /api/report. Must sit behind the token-validation
// middleware.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	resp := api.ReportResponse{URL: h.embedURL}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode report response", slog.Any("error", err))
	}
}
