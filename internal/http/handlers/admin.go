package handlers

import (
	"net/http"

	"freight-matching-platform/internal/logx"
)

// AdminHandler serves /api/admin/*. Every operation is admin-only; the
// usecase enforces it.
type AdminHandler struct {
	usecase adminUsecase
	logger  logx.Logger
	format  Format
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(logger logx.Logger, uc adminUsecase, format Format) *AdminHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AdminHandler{usecase: uc, logger: logger, format: format}
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.usecase.Users(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	p := h.format.presenter(r)
	out := make([]userDTO, 0, len(list))
	for _, u := range list {
		out = append(out, p.user(u))
	}
	writeJSON(h.logger, w, r, http.StatusOK, usersResponse{envelope: success(""), Users: out})
}

// CreateUser handles POST /api/admin/users. Unlike /register it may create admins.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req registerRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	u, err := h.usecase.CreateUser(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, userResponse{
		envelope: success("user created"),
		User:     h.format.presenter(r).user(u),
	})
}

// Carriers handles GET /api/admin/carriers, inactive carriers included.
func (h *AdminHandler) Carriers(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.usecase.Carriers(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, carriersResponse{envelope: success(""), Carriers: carriers(list)})
}

// CreateCarrier handles POST /api/admin/carriers.
func (h *AdminHandler) CreateCarrier(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req carrierRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	c, err := h.usecase.CreateCarrier(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, carrierResponse{envelope: success("carrier created"), Carrier: carrier(c)})
}

// Drivers handles GET /api/admin/drivers?carrier_id=.
func (h *AdminHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	carrierID, err := optionalID(r, "carrier_id")
	if err != nil {
		writeInvalid(h.logger, w, r, err.Error())
		return
	}
	list, err := h.usecase.Drivers(r.Context(), actor, carrierID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	p := h.format.presenter(r)
	out := make([]driverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, p.driver(d))
	}
	writeJSON(h.logger, w, r, http.StatusOK, driversResponse{envelope: success(""), Drivers: out})
}

// CreateDriver handles POST /api/admin/drivers.
func (h *AdminHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req driverRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	d, err := h.usecase.CreateDriver(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, driverResponse{
		envelope: success("driver created"),
		Driver:   h.format.presenter(r).driver(d),
	})
}

// Vehicles handles GET /api/admin/vehicles.
func (h *AdminHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	list, err := h.usecase.Vehicles(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	p := h.format.presenter(r)
	out := make([]vehicleDTO, 0, len(list))
	for _, v := range list {
		out = append(out, p.vehicle(v))
	}
	writeJSON(h.logger, w, r, http.StatusOK, vehiclesResponse{envelope: success(""), Vehicles: out})
}

// CreateVehicle handles POST /api/admin/vehicles.
func (h *AdminHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	var req vehicleRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	v, err := h.usecase.CreateVehicle(r.Context(), actor, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, vehicleResponse{
		envelope: success("vehicle created"),
		Vehicle:  h.format.presenter(r).vehicle(v),
	})
}

// Statistics handles GET /api/admin/statistics.
func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	actor, found := actorFrom(h.logger, w, r)
	if !found {
		return
	}
	s, err := h.usecase.Statistics(r.Context(), actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statisticsResponse{envelope: success(""), Statistics: statistics(s)})
}
