package handler

import (
	"net/http"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// GetWebhook implements api.ServerInterface. A session without a webhook
// answers configured=false rather than 404.
func (h *Handler) GetWebhook(w http.ResponseWriter, r *http.Request, id string) {
	status, err := h.service.Webhooks.Status(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "get_webhook", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, status)
}

// CreateWebhook implements api.ServerInterface.
func (h *Handler) CreateWebhook(w http.ResponseWriter, r *http.Request, id string, params api.CreateWebhookParams) {
	var req models.WebhookCreateRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	autoStart := params.AutoStart != nil && *params.AutoStart
	result, err := h.service.Webhooks.Create(r.Context(), id, req, autoStart)
	if err != nil {
		if result != nil {
			h.sendPartial(w, r, "create_webhook", result, err)
			return
		}
		h.sendError(w, r, "create_webhook", err)
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, result)
}

// DeleteWebhook implements api.ServerInterface.
func (h *Handler) DeleteWebhook(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.service.Webhooks.Delete(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "delete_webhook", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, api.DeletedResponse{Deleted: deleted})
}

// StartWebhook implements api.ServerInterface. The answer is the config as
// re-read after the call.
func (h *Handler) StartWebhook(w http.ResponseWriter, r *http.Request, id string) {
	cfg, err := h.service.Webhooks.Start(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "start_webhook", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, cfg)
}

// StopWebhook implements api.ServerInterface.
func (h *Handler) StopWebhook(w http.ResponseWriter, r *http.Request, id string) {
	cfg, err := h.service.Webhooks.Stop(r.Context(), id)
	if err != nil {
		h.sendError(w, r, "stop_webhook", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, cfg)
}

// GetPoolStatus implements api.ServerInterface.
func (h *Handler) GetPoolStatus(w http.ResponseWriter, r *http.Request) {
	pool, err := h.service.Webhooks.PollPoolStatus(r.Context())
	if err != nil {
		h.sendError(w, r, "pool_status", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pool)
}
