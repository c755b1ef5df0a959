package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ersonp/mdchat/internal/api/middleware"
	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// EvaluateRequest is the body of POST /api/evaluate.
type EvaluateRequest struct {
	Text   string `json:"text"`
	Schema string `json:"schema"`
	APIKey string `json:"api_key,omitempty"`
}

// APIKeyResolver picks the API key for a request, given the key the caller
// supplied (possibly empty).
type APIKeyResolver func(override string) string

// EvaluateHandler exposes the schema evaluator over HTTP.
type EvaluateHandler struct {
	evaluator  ports.SchemaEvaluator
	resolveKey APIKeyResolver
	logger     *slog.Logger
}

// NewEvaluateHandler creates a new evaluate handler.
func NewEvaluateHandler(evaluator ports.SchemaEvaluator, resolveKey APIKeyResolver, logger *slog.Logger) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator:  evaluator,
		resolveKey: resolveKey,
		logger:     logger,
	}
}

// Evaluate handles POST /api/evaluate.
// Downstream failures are reported as an opaque 500.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest)
		return
	}

	result, err := h.evaluator.Evaluate(r.Context(), entities.EvaluationRequest{
		Text:   req.Text,
		Schema: req.Schema,
		APIKey: h.resolveKey(req.APIKey),
	})
	if err != nil {
		h.logger.Error("evaluation failed", "error", err)
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	middleware.SetCORSHeaders(w.Header())
	writeJSON(w, http.StatusOK, result)
}
