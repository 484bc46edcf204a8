package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

const maxEventBodyBytes = 1 << 20

type receiveEventResponse struct {
	Event     *models.InboxEvent `json:"event"`
	Duplicate bool               `json:"duplicate"`
}

// ListEvents implements api.ServerInterface.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request, params api.ListEventsParams) {
	page, err := h.service.Events.List(r.Context(), repository.EventFilter{
		SessionID: deref(params.SessionId),
		EventType: deref(params.EventType),
		Limit:     deref(params.Limit),
		Offset:    deref(params.Offset),
	})
	if err != nil {
		h.sendError(w, r, "list_events", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, page)
}

// ReceiveEvent implements api.ServerInterface. Redelivered events answer 200
// with duplicate=true so the sender stops retrying.
func (h *Handler) ReceiveEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.WriteError(w, r, http.StatusRequestEntityTooLarge, apierrors.CodeValidation, "Event body exceeds the size limit")
			return
		}
		api.WriteError(w, r, http.StatusBadRequest, api.CodeInvalidBody, err.Error())
		return
	}

	event, inserted, err := h.service.Events.Receive(r.Context(), service.EventDelivery{
		Header: r.Header,
		Body:   body,
	})
	if err != nil {
		h.sendError(w, r, "receive_event", err)
		return
	}

	status := http.StatusAccepted
	if !inserted {
		status = http.StatusOK
	}
	api.WriteJSON(w, r, status, receiveEventResponse{Event: event, Duplicate: !inserted})
}
