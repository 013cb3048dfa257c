package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// explainService defines the minimal interface needed by ExplainHandler.
type explainService interface {
	Explain(ctx context.Context, req domain.ExplanationRequest) (domain.ExplanationResult, error)
}

// searchRecorder notes looked-up terms for the recent list.
type searchRecorder interface {
	RecordSearch(ctx context.Context, term string) error
}

// ExplainHandler serves the explanation endpoint.
type ExplainHandler struct {
	svc    explainService
	recent searchRecorder
	log    *slog.Logger
}

// NewExplainHandler creates an ExplainHandler.
func NewExplainHandler(svc explainService, recent searchRecorder, logger *slog.Logger) *ExplainHandler {
	return &ExplainHandler{svc: svc, recent: recent, log: logger.With("handler", "explain")}
}

// Explain handles POST /api/explain. Upstream failures still produce a
// 200 response; the error taxonomy lives in the result body so clients
// render the message instead of a transport failure.
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req domain.ExplanationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Explain(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	if result.Error == "" {
		if rerr := h.recent.RecordSearch(r.Context(), req.Term); rerr != nil {
			h.log.WarnContext(r.Context(), "record search failed", slog.String("error", rerr.Error()))
		}
	}

	writeJSON(w, http.StatusOK, result)
}
