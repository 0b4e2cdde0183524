package handlers

import (
	"net/http"

	"freight-matching-platform/internal/logx"
)

// Handlers serves the unauthenticated service endpoints.
type Handlers struct {
	Logger logx.Logger
	Format Format
}

// New creates a Handlers instance.
func New(logger logx.Logger, format Format) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, Format: format}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Vocabulary handles GET /api/vocabulary: labels and badge classes of every
// status in the caller's locale.
func (h *Handlers) Vocabulary(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, h.Format.presenter(r).vocabulary())
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "not_found", "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}
