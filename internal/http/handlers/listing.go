package handlers

import (
	"net/http"
	"strings"

	"freight-matching-platform/internal/logx"
)

// ListingHandler serves capacity offers ("tolerances"), delivery requests and
// the public carrier directory.
type ListingHandler struct {
	usecase listingUsecase
	logger  logx.Logger
	format  Format
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(logger logx.Logger, uc listingUsecase, format Format) *ListingHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ListingHandler{usecase: uc, logger: logger, format: format}
}

// ListOffers handles GET /api/tolerances?status=.
func (h *ListingHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.usecase.ListOffers(r.Context(), actor, statusQuery(r))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, offersResponse{
		envelope:   success(""),
		Tolerances: h.format.presenter(r).offers(list),
	})
}

// CreateOffer handles POST /api/tolerances.
func (h *ListingHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req offerRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	o, err := h.usecase.CreateOffer(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, offerResponse{
		envelope:  success("tolerance registered"),
		Tolerance: h.format.presenter(r).offer(o),
	})
}

// ListRequests handles GET /api/delivery-requests?status=.
func (h *ListingHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.usecase.ListRequests(r.Context(), actor, statusQuery(r))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryRequestsResponse{
		envelope:         success(""),
		DeliveryRequests: h.format.presenter(r).requests(list),
	})
}

// CreateRequest handles POST /api/delivery-requests.
func (h *ListingHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req deliveryRequestRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	dr, err := h.usecase.CreateRequest(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryRequestResponse{
		envelope:        success("delivery request registered"),
		DeliveryRequest: h.format.presenter(r).request(dr),
	})
}

// Carriers handles GET /api/carriers: active carriers, used by driver sign-up.
func (h *ListingHandler) Carriers(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListCarriers(r.Context())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, carriersResponse{
		envelope: success(""),
		Carriers: carriers(list),
	})
}

func statusQuery(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
}
