package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/hub"
)

// hubService defines the minimal interface needed by HubHandler.
type hubService interface {
	AddFavorite(ctx context.Context, term string) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, term string) error
	ListFavorites(ctx context.Context) ([]domain.Favorite, error)
	RecentSearches(ctx context.Context, limit int) ([]domain.RecentSearch, error)
	ClearRecent(ctx context.Context) error
	WordOfDay(ctx context.Context) (*hub.WordOfDayResult, error)
}

// HubHandler serves favorites, recent searches, and the word of the day.
type HubHandler struct {
	svc hubService
	log *slog.Logger
}

// NewHubHandler creates a HubHandler.
func NewHubHandler(svc hubService, logger *slog.Logger) *HubHandler {
	return &HubHandler{svc: svc, log: logger.With("handler", "hub")}
}

type favoriteRequest struct {
	Term string `json:"word"`
}

// AddFavorite handles POST /api/favorites.
func (h *HubHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fav, err := h.svc.AddFavorite(r.Context(), req.Term)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

// RemoveFavorite handles DELETE /api/favorites/{word}.
func (h *HubHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFavorite(r.Context(), r.PathValue("word")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites handles GET /api/favorites.
func (h *HubHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.svc.ListFavorites(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// RecentSearches handles GET /api/recent.
func (h *HubHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	searches, err := h.svc.RecentSearches(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recentSearches": searches})
}

// ClearRecent handles DELETE /api/recent.
func (h *HubHandler) ClearRecent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearRecent(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WordOfDay handles GET /api/word-of-day.
func (h *HubHandler) WordOfDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.WordOfDay(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
