package handlers

import (
	"net/http"

	"freight-matching-platform/internal/logx"
)

// LocationHandler serves driver position reports and match paths.
type LocationHandler struct {
	usecase locationUsecase
	logger  logx.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(logger logx.Logger, uc locationUsecase) *LocationHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LocationHandler{usecase: uc, logger: logger}
}

// Update handles POST /api/location {latitude, longitude, match_id?}.
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req locationRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	p, err := h.usecase.Update(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationResponse{
		envelope: success("location updated"),
		Location: location(p),
	})
}

// Path handles GET /api/location/path/{match_id}.
func (h *LocationHandler) Path(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	id, err := idFromURL(r, "match_id")
	if err != nil {
		writeInvalid(h.logger, w, r, "invalid match id")
		return
	}
	points, err := h.usecase.Path(r.Context(), actor, id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	out := make([]locationDTO, 0, len(points))
	for _, p := range points {
		out = append(out, location(p))
	}
	writeJSON(h.logger, w, r, http.StatusOK, pathResponse{
		envelope: success(""),
		MatchID:  id,
		Path:     out,
	})
}
