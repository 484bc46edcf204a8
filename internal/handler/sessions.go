package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

const errorCodeWatchNotFound = "WATCH_NOT_FOUND"

// createSessionResponse adds a displayable QR data URL to the backend answer.
type createSessionResponse struct {
	*models.CreateSessionResponse
	QRDataURL string `json:"qr_data_url,omitempty"`
}

// ListSessions implements api.ServerInterface.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.Sessions.List(r.Context())
	if err != nil {
		h.sendError(w, r, "list_sessions", err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	api.WriteJSON(w, r, http.StatusOK, sessions)
}

// CreateSession implements api.ServerInterface.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	resp, err := h.service.Sessions.Create(r.Context(), req)
	if err != nil {
		h.sendError(w, r, "create_session", err)
		return
	}

	out := createSessionResponse{CreateSessionResponse: resp}
	if resp.QRImageBase64 != "" {
		qr, err := media.QRDataURL(resp.QRImageBase64)
		if err != nil {
			h.logger.Warn("Backend returned an unreadable QR image",
				zap.String("session_id", resp.Session.ID),
				zap.Error(err))
		} else {
			out.QRDataURL = qr
		}
	}

	api.WriteJSON(w, r, http.StatusCreated, out)
}

// GetSession implements api.ServerInterface.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	status, err := h.service.Sessions.Get(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "get_session", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, status)
}

// DeleteSession implements api.ServerInterface. Deleting a missing session answers deleted=false.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.service.Sessions.Delete(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "delete_session", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, api.DeletedResponse{Deleted: deleted})
}

// VerifySessionCode implements api.ServerInterface.
func (h *Handler) VerifySessionCode(w http.ResponseWriter, r *http.Request, id string) {
	var req models.VerifyCodeRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	session, err := h.service.Sessions.VerifyCode(r.Context(), id, req.Code)
	if err != nil {
		h.sendError(w, r, "verify_code", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, session)
}

// PollSessionStatus implements api.ServerInterface. It always asks the backend.
func (h *Handler) PollSessionStatus(w http.ResponseWriter, r *http.Request, id string) {
	status, err := h.service.Sessions.Poll(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "poll_session", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, status)
}

// StartSessionWatch implements api.ServerInterface. The watch outlives the
// request and ends on its own, on DELETE, or at shutdown.
func (h *Handler) StartSessionWatch(w http.ResponseWriter, r *http.Request, id string) {
	var req api.WatchSessionRequest
	if !h.decode(w, r, &req, true) {
		return
	}
	if err := validation.Struct(req); err != nil {
		h.sendError(w, r, "watch_session", err)
		return
	}

	opts := service.AuthWatchOptions{
		Method:   models.AuthMethod(req.AuthMethod),
		Interval: time.Duration(req.IntervalMs) * time.Millisecond,
	}

	watch, err := h.service.Sessions.WatchAuth(context.WithoutCancel(r.Context()), id, opts)
	if err != nil {
		h.sendError(w, r, "watch_session", err)
		return
	}

	api.WriteJSON(w, r, http.StatusAccepted, watch.Status())
}

// GetSessionWatch implements api.ServerInterface.
func (h *Handler) GetSessionWatch(w http.ResponseWriter, r *http.Request, id string) {
	watch, ok := h.service.Sessions.Watch(id)
	if !ok {
		api.WriteError(w, r, http.StatusNotFound, errorCodeWatchNotFound, "No watch for session "+id)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, watch.Status())
}

// CancelSessionWatch implements api.ServerInterface.
func (h *Handler) CancelSessionWatch(w http.ResponseWriter, r *http.Request, id string) {
	api.WriteJSON(w, r, http.StatusOK, api.CancelledResponse{
		Cancelled: h.service.Sessions.CancelWatch(id),
	})
}
