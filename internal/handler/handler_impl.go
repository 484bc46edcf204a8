// Package handler implements the gateway's HTTP operations on top of the service layer.
package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

// DefaultMaxUploadBytes bounds multipart media uploads.
const DefaultMaxUploadBytes = 64 << 20

type Handler struct {
	service        *service.Service
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service:        service,
		logger:         logger,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:            health.Status,
		Timestamp:         time.Now(),
		BackendStatus:     health.BackendStatus,
		DatabaseStatus:    health.DatabaseStatus,
		RedisStatus:       health.RedisStatus,
		PoolMonitorStatus: health.PoolMonitorStatus,
		ActiveWatches:     health.ActiveWatches,
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	if health.CircuitBreakerStatus != "" {
		status := health.CircuitBreakerStatus
		response.CircuitBreakerStatus = &status
	}

	// Degraded still answers 200 so the dashboard stays usable while the breaker is open.
	status := http.StatusOK
	if health.Status == service.HealthUnhealthy {
		status = http.StatusServiceUnavailable
	}

	api.WriteJSON(w, r, status, response)
}
