// Package api defines the gateway's HTTP surface: the operations, their
// parameters and the {success, data, error} response envelope.
package api

import (
	"encoding/json"
	"time"
)

// Response is the envelope of every gateway answer.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	// Partial is set when the first step of a multi-step operation succeeded
	// and a later one failed.
	Partial bool `json:"partial,omitempty"`
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details json.RawMessage   `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// PartialData accompanies a partial success.
type PartialData struct {
	Result    any       `json:"result"`
	Completed string    `json:"completed"`
	Failed    string    `json:"failed"`
	Error     ErrorBody `json:"error"`
}

type HealthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	BackendStatus        string    `json:"backend_status"`
	DatabaseStatus       string    `json:"database_status"`
	RedisStatus          string    `json:"redis_status"`
	PoolMonitorStatus    string    `json:"pool_monitor_status"`
	ActiveWatches        int       `json:"active_watches"`
	CircuitBreakerState  *string   `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus *string   `json:"circuit_breaker_status,omitempty"`
}

// WatchSessionRequest is the optional body of POST /api/sessions/{id}/watch.
// WatchSessionRequest starts an auth watch. IntervalMs below the configured
// session interval is raised to it.
type WatchSessionRequest struct {
	AuthMethod string `json:"auth_method,omitempty" validate:"omitempty,oneof=sms qr"`
	IntervalMs int    `json:"interval_ms,omitempty" validate:"gte=0"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type CancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

// ListChatsParams defines parameters for ListChats.
type ListChatsParams struct {
	Limit    *int  `form:"limit,omitempty" json:"limit,omitempty"`
	Offset   *int  `form:"offset,omitempty" json:"offset,omitempty"`
	Archived *bool `form:"archived,omitempty" json:"archived,omitempty"`
}

// GetChatHistoryParams defines parameters for GetChatHistory.
type GetChatHistoryParams struct {
	Limit      *int   `form:"limit,omitempty" json:"limit,omitempty"`
	OffsetId   *int64 `form:"offset_id,omitempty" json:"offset_id,omitempty"`
	OffsetDate *int64 `form:"offset_date,omitempty" json:"offset_date,omitempty"`
}

// WatchChatHistoryParams defines parameters for WatchChatHistory.
type WatchChatHistoryParams struct {
	AfterId *int64 `form:"after_id,omitempty" json:"after_id,omitempty"`
	WaitMs  *int   `form:"wait_ms,omitempty" json:"wait_ms,omitempty"`
	Limit   *int   `form:"limit,omitempty" json:"limit,omitempty"`
}

// HistoryWatchResponse answers a history long-poll. NewMessages is false
// when the wait ran out first; History then holds the last page read.
type HistoryWatchResponse struct {
	History     any  `json:"history"`
	NewMessages bool `json:"new_messages"`
	Polls       int  `json:"polls"`
}

// ListContactsParams defines parameters for ListContacts.
type ListContactsParams struct {
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int    `form:"offset,omitempty" json:"offset,omitempty"`
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// CreateWebhookParams defines parameters for CreateWebhook.
type CreateWebhookParams struct {
	AutoStart *bool `form:"auto_start,omitempty" json:"auto_start,omitempty"`
}

// GetJobStatusParams defines parameters for GetJobStatus.
type GetJobStatusParams struct {
	// Wait blocks until the job finishes or the request times out.
	Wait *bool `form:"wait,omitempty" json:"wait,omitempty"`
}

// ListEventsParams defines parameters for ListEvents.
type ListEventsParams struct {
	SessionId *string `form:"session_id,omitempty" json:"session_id,omitempty"`
	EventType *string `form:"event_type,omitempty" json:"event_type,omitempty"`
	Limit     *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset    *int    `form:"offset,omitempty" json:"offset,omitempty"`
}
