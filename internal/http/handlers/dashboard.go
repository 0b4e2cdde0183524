package handlers

import (
	"errors"
	"net/http"

	"freight-matching-platform/internal/logx"
)

// DashboardHandler serves the per-role summary.
type DashboardHandler struct {
	usecase dashboardUsecase
	logger  logx.Logger
	format  Format
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(logger logx.Logger, uc dashboardUsecase, format Format) *DashboardHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DashboardHandler{usecase: uc, logger: logger, format: format}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	d, err := h.usecase.For(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	body, complete := h.format.presenter(r).dashboard(d)
	if !complete {
		writeAppError(h.logger, w, r, errors.New("dashboard summary missing for role "+string(d.Role)))
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, body)
}
