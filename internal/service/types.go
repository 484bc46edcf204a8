package service

import (
	"net/http"
	"time"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// Health values, mirrored in the gateway's /health answer.
const (
	HealthHealthy   = "healthy"
	HealthDegraded  = "degraded"
	HealthUnhealthy = "unhealthy"

	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusDisabled     = "disabled"

	MonitorRunning = "running"
	MonitorStopped = "stopped"
)

type HealthStatus struct {
	Status               string `json:"status"`
	BackendStatus        string `json:"backend_status"`
	DatabaseStatus       string `json:"database_status"`
	RedisStatus          string `json:"redis_status"`
	PoolMonitorStatus    string `json:"pool_monitor_status"`
	ActiveWatches        int    `json:"active_watches"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus string `json:"circuit_breaker_status,omitempty"`
}

// WebhookStatus combines the webhook config with the live pool entry. The two
// can disagree for a while after a start, stop or crash.
type WebhookStatus struct {
	Configured  bool                  `json:"configured"`
	Config      *models.WebhookConfig `json:"config,omitempty"`
	IsListening bool                  `json:"is_listening"`
	PoolSession *models.PoolSession   `json:"pool_session,omitempty"`
}

// WebhookCreateResult is returned by Create. Started is false when autoStart
// was not requested or the start call failed.
type WebhookCreateResult struct {
	Webhook *models.WebhookResponse `json:"webhook"`
	Config  *models.WebhookConfig   `json:"config,omitempty"`
	Started bool                    `json:"started"`
}

// HistoryWatchOptions tunes ChatService.WatchHistory.
type HistoryWatchOptions struct {
	// AfterID ends the watch once a message newer than it shows up. Zero
	// keeps the watch running until it is cancelled.
	AfterID int64
}

type AuthWatchOptions struct {
	// Method set to qr enables the attempt cap.
	Method models.AuthMethod
	// Interval slows polling below the configured session interval. Shorter
	// values are raised to the configured one.
	Interval time.Duration
	// OnUpdate is called with every successfully polled status.
	OnUpdate func(*models.SessionStatus)
}

// AuthWatchStatus is the JSON view of an AuthWatch.
type AuthWatchStatus struct {
	SessionID   string                `json:"session_id"`
	Method      models.AuthMethod     `json:"method"`
	IntervalMs  int64                 `json:"interval_ms"`
	Running     bool                  `json:"running"`
	Polls       int                   `json:"polls"`
	Attempt     int                   `json:"attempt"`
	MaxAttempts int                   `json:"max_attempts"`
	Latest      *models.SessionStatus `json:"latest,omitempty"`
	LastError   string                `json:"last_error,omitempty"`
	Error       string                `json:"error,omitempty"`
}

// MediaFile is a local file to be validated, uploaded and sent.
type MediaFile struct {
	Kind     models.MediaKind
	To       string
	Caption  string
	Filename string
	Data     []byte
}

// EventDelivery is one inbound webhook request.
type EventDelivery struct {
	Header http.Header
	Body   []byte
}

type EventPage struct {
	Events []models.InboxEvent `json:"events"`
	Total  int64               `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
