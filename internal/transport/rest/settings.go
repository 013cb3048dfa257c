package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) (domain.Settings, error)
}

// SettingsHandler serves the user settings endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

// settingsResponse never carries the API key itself, only whether one is
// stored.
type settingsResponse struct {
	HasAPIKey  bool   `json:"hasApiKey"`
	Style      string `json:"style"`
	Model      string `json:"model"`
	PreferFree bool   `json:"preferFree"`
}

type settingsRequest struct {
	// APIKey nil means leave the stored key unchanged; an explicit empty
	// string clears it.
	APIKey     *string `json:"apiKey"`
	Style      string  `json:"style"`
	Model      string  `json:"model"`
	PreferFree bool    `json:"preferFree"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	return settingsResponse{
		HasAPIKey:  s.HasKey(),
		Style:      s.Style.String(),
		Model:      s.Model,
		PreferFree: s.PreferFree,
	}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stored, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(stored))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	next := domain.Settings{
		Style:      domain.ExplanationStyle(req.Style),
		Model:      req.Model,
		PreferFree: req.PreferFree,
	}
	if req.APIKey != nil {
		next.APIKey = *req.APIKey
	} else {
		current, err := h.svc.Get(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		next.APIKey = current.APIKey
	}

	updated, err := h.svc.Update(r.Context(), next)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(updated))
}
