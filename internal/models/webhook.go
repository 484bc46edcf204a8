package models

import (
	"encoding/json"
	"time"
)

// Defaults applied by the backend when a webhook is created without them.
const (
	DefaultWebhookTimeoutMs  = 5000
	DefaultWebhookMaxRetries = 3
)

type WebhookConfig struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	URL         string     `json:"url"`
	Events      []string   `json:"events"`
	Secret      string     `json:"secret,omitempty"`
	TimeoutMs   int        `json:"timeout_ms"`
	MaxRetries  int        `json:"max_retries"`
	IsActive    bool       `json:"is_active"`
	LastError   string     `json:"last_error,omitempty"`
	LastErrorAt *time.Time `json:"last_error_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// WebhookCreateRequest configures a session webhook. An empty Events set means all events.
type WebhookCreateRequest struct {
	URL        string   `json:"url" validate:"required,http_url"`
	Events     []string `json:"events,omitempty" validate:"omitempty,dive,required"`
	Secret     string   `json:"secret,omitempty"`
	TimeoutMs  int      `json:"timeout_ms,omitempty" validate:"gte=0"`
	MaxRetries int      `json:"max_retries,omitempty" validate:"gte=0"`
}

// WithDefaults fills the zero-valued numeric settings.
func (r WebhookCreateRequest) WithDefaults() WebhookCreateRequest {
	if r.TimeoutMs == 0 {
		r.TimeoutMs = DefaultWebhookTimeoutMs
	}
	if r.MaxRetries == 0 {
		r.MaxRetries = DefaultWebhookMaxRetries
	}
	return r
}

type WebhookResponse struct {
	ID        string   `json:"id"`
	SessionID string   `json:"session_id"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	IsActive  bool     `json:"is_active"`
}

// PoolStatus is one snapshot of the backend's listener pool.
type PoolStatus struct {
	ActiveCount int           `json:"active_count"`
	Sessions    []PoolSession `json:"sessions"`
}

type PoolSession struct {
	SessionID   string    `json:"session_id"`
	SessionName string    `json:"session_name,omitempty"`
	TelegramID  int64     `json:"telegram_id,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	IsConnected bool      `json:"is_connected"`
}

// Find returns the pool entry for sessionID, if any.
func (p *PoolStatus) Find(sessionID string) (*PoolSession, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Sessions {
		if p.Sessions[i].SessionID == sessionID {
			return &p.Sessions[i], true
		}
	}
	return nil, false
}

// IsListening reports whether sessionID has a connected listener in the pool.
func (p *PoolStatus) IsListening(sessionID string) bool {
	s, ok := p.Find(sessionID)
	return ok && s.IsConnected
}

type EventType string

const (
	EventNewMessage     EventType = "message.new"
	EventEditMessage    EventType = "message.edit"
	EventDeleteMessage  EventType = "message.delete"
	EventUserOnline     EventType = "user.online"
	EventUserOffline    EventType = "user.offline"
	EventUserTyping     EventType = "user.typing"
	EventChatAction     EventType = "chat.action"
	EventSessionStarted EventType = "session.started"
	EventSessionStopped EventType = "session.stopped"
	EventSessionError   EventType = "session.error"
)

var AllEvents = []EventType{
	EventNewMessage,
	EventEditMessage,
	EventDeleteMessage,
	EventUserOnline,
	EventUserOffline,
	EventUserTyping,
	EventChatAction,
	EventSessionStarted,
	EventSessionStopped,
	EventSessionError,
}

// WebhookEvent is the payload the backend delivers to a webhook URL.
type WebhookEvent struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}
