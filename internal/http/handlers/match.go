package handlers

import (
	"net/http"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/service/match"
)

// MatchHandler serves matches, their lifecycle actions and auto-match.
type MatchHandler struct {
	matches   matchUsecase
	autoMatch autoMatchUsecase
	logger    logx.Logger
	format    Format
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(logger logx.Logger, matches matchUsecase, autoMatch autoMatchUsecase, format Format) *MatchHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &MatchHandler{matches: matches, autoMatch: autoMatch, logger: logger, format: format}
}

// List handles GET /api/matches?status=.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.matches.List(r.Context(), actor, statusQuery(r))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchesResponse{
		envelope: success(""),
		Matches:  h.format.presenter(r).matches(list),
	})
}

// Get handles GET /api/matches/{id}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeInvalid(h.logger, w, r, "invalid id")
		return
	}
	m, err := h.matches.Get(r.Context(), actor, id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchResponse{
		envelope: success(""),
		Match:    h.format.presenter(r).match(m),
	})
}

// Capabilities handles GET /api/matches/{id}/capabilities: the actions the
// caller may take on the match in its current status.
func (h *MatchHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeInvalid(h.logger, w, r, "invalid id")
		return
	}
	m, set, err := h.matches.Capabilities(r.Context(), actor, id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	actions := make([]string, 0, set.Len())
	for _, a := range set.List() {
		actions = append(actions, string(a))
	}
	writeJSON(h.logger, w, r, http.StatusOK, capabilitiesResponse{
		envelope: success(""),
		MatchID:  m.ID,
		Status:   string(m.Status),
		Actions:  actions,
	})
}

// Events handles GET /api/matches/{id}/events: the status history.
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeInvalid(h.logger, w, r, "invalid id")
		return
	}
	events, err := h.matches.History(r.Context(), actor, id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchEventsResponse{
		envelope: success(""),
		MatchID:  id,
		Events:   matchEvents(events),
	})
}

// Accept handles POST /api/matches/{id}/accept.
func (h *MatchHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.ActionAccept, "match accepted")
}

// Reject handles POST /api/matches/{id}/reject {reason}.
func (h *MatchHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.ActionReject, "match rejected")
}

// Start handles POST /api/matches/{id}/start.
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.ActionStart, "transport started")
}

// Complete handles POST /api/matches/{id}/complete.
func (h *MatchHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.ActionComplete, "transport completed")
}

func (h *MatchHandler) transition(w http.ResponseWriter, r *http.Request, action domain.MatchAction, msg string) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeInvalid(h.logger, w, r, "invalid id")
		return
	}
	var req transitionRequest
	if !decodeJSON(h.logger, w, r, &req, true) {
		return
	}
	m, err := h.matches.Transition(r.Context(), actor, id, action, match.TransitionInput{
		Reason:   req.Reason,
		Expected: req.ExpectedStatus,
	})
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchResponse{
		envelope: success(msg),
		Match:    h.format.presenter(r).match(m),
	})
}

// AutoMatch handles POST /api/auto-match (admin only).
func (h *MatchHandler) AutoMatch(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	res, err := h.autoMatch.Run(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	msg := "no new matches"
	if res.MatchesCreated > 0 {
		msg = "auto-match completed"
	}
	writeJSON(h.logger, w, r, http.StatusOK, autoMatchResponse{
		envelope:       success(msg),
		MatchesCreated: res.MatchesCreated,
		Proposed:       res.Proposed,
	})
}
