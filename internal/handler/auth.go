package handler

import (
	"net/http"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// Login implements api.ServerInterface.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	user, err := h.service.Auth.Login(r.Context(), req)
	if err != nil {
		h.sendError(w, r, "login", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, user)
}

// Register implements api.ServerInterface. The new account is logged in
// straight away; when only the login fails the user comes back as a partial
// success.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	user, err := h.service.Auth.Register(r.Context(), req)
	if err != nil {
		h.sendPartial(w, r, "register", user, err)
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, user)
}

// Logout implements api.ServerInterface. Local credentials are dropped even
// when the backend call fails.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Auth.Logout(r.Context()); err != nil {
		h.sendError(w, r, "logout", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, nil)
}

// GetMe implements api.ServerInterface.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Auth.Me(r.Context())
	if err != nil {
		h.sendError(w, r, "me", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, user)
}

// RefreshToken implements api.ServerInterface.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Auth.Refresh(r.Context()); err != nil {
		h.sendError(w, r, "refresh", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, nil)
}
