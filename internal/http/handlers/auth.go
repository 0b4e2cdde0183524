package handlers

import (
	"net/http"

	authmw "freight-matching-platform/internal/http/middleware"
	"freight-matching-platform/internal/logx"
)

// AuthHandler serves sign-up, login and logout.
type AuthHandler struct {
	usecase identityUsecase
	logger  logx.Logger
	format  Format
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger logx.Logger, uc identityUsecase, format Format) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{usecase: uc, logger: logger, format: format}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	s, err := h.usecase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, h.format.presenter(r).session(s))
}

// Register handles POST /register. Admin accounts cannot be self-registered.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(h.logger, w, r, &req, false) {
		return
	}
	u, err := h.usecase.Register(r.Context(), req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, userResponse{
		envelope: success("registration successful"),
		User:     h.format.presenter(r).user(u),
	})
}

// Logout handles POST /logout and revokes the bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := authmw.TokenFrom(r.Context())
	if token == "" {
		token, _ = authmw.BearerToken(r)
	}
	if token != "" {
		if err := h.usecase.Logout(r.Context(), token); err != nil {
			writeAppError(h.logger, w, r, err)
			return
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, success("logged out"))
}
