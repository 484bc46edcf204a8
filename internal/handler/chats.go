package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

// History long-polls stay below the default request timeout.
const (
	DefaultHistoryWait = 20 * time.Second
	MaxHistoryWait     = 25 * time.Second
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// ListChats implements api.ServerInterface.
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request, id string, params api.ListChatsParams) {
	chats, err := h.service.Chats.GetChats(r.Context(), id, models.GetChatsParams{
		Limit:    deref(params.Limit),
		Offset:   deref(params.Offset),
		Archived: params.Archived,
	})
	if err != nil {
		h.sendError(w, r, "list_chats", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, chats)
}

// GetChat implements api.ServerInterface.
func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request, id string, chatID int64) {
	chat, err := h.service.Chats.GetChatInfo(r.Context(), id, chatID)
	if err != nil {
		h.sendError(w, r, "get_chat", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, chat)
}

// GetChatHistory implements api.ServerInterface.
func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request, id string, chatID int64, params api.GetChatHistoryParams) {
	history, err := h.service.Chats.GetHistory(r.Context(), id, chatID, models.GetHistoryParams{
		Limit:      deref(params.Limit),
		OffsetID:   deref(params.OffsetId),
		OffsetDate: deref(params.OffsetDate),
	})
	if err != nil {
		h.sendError(w, r, "chat_history", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, history)
}

// WatchChatHistory implements api.ServerInterface. It holds the request until
// a message newer than after_id arrives or wait_ms runs out.
func (h *Handler) WatchChatHistory(w http.ResponseWriter, r *http.Request, id string, chatID int64, params api.WatchChatHistoryParams) {
	if params.AfterId == nil {
		h.sendError(w, r, "watch_history", apierrors.NewValidationError("after_id", "is required"))
		return
	}

	wait := time.Duration(deref(params.WaitMs)) * time.Millisecond
	if wait <= 0 {
		wait = DefaultHistoryWait
	}
	wait = min(wait, MaxHistoryWait)

	ctx, cancel := context.WithTimeout(r.Context(), wait)
	defer cancel()

	watch, err := h.service.Chats.WatchHistory(ctx, id, chatID,
		models.GetHistoryParams{Limit: deref(params.Limit)},
		service.HistoryWatchOptions{AfterID: *params.AfterId})
	if err != nil {
		h.sendError(w, r, "watch_history", err)
		return
	}

	<-watch.Done()
	if r.Context().Err() != nil {
		return
	}

	snap := watch.Snapshot()
	switch {
	case snap.Err == nil:
	case errors.Is(snap.Err, service.ErrWatchCancelled):
		if snap.Latest == nil && snap.LastErr != nil {
			h.sendError(w, r, "watch_history", snap.LastErr)
			return
		}
	default:
		h.sendError(w, r, "watch_history", snap.Err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, api.HistoryWatchResponse{
		History:     snap.Latest,
		NewMessages: snap.Err == nil,
		Polls:       snap.Polls,
	})
}

// ListContacts implements api.ServerInterface.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request, id string, params api.ListContactsParams) {
	contacts, err := h.service.Chats.GetContacts(r.Context(), id, models.GetContactsParams{
		Limit:  deref(params.Limit),
		Offset: deref(params.Offset),
		Search: deref(params.Search),
	})
	if err != nil {
		h.sendError(w, r, "list_contacts", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, contacts)
}
