package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ppopeskul/telegram-dashboard/internal/apiclient"
)

// DBPinger is satisfied by repository.Repository.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	backend     BackendHealth
	db          DBPinger
	redisClient redis.Cmdable
	sessions    SessionTracker
	webhooks    WebhookTracker
}

// NewHealthService creates the health reporter. db and redisClient may be nil
// when the gateway runs without them; they are then reported as disabled.
func NewHealthService(
	backend BackendHealth,
	db DBPinger,
	redisClient redis.Cmdable,
	sessions SessionTracker,
	webhooks WebhookTracker,
) HealthService {
	return &healthService{
		backend:     backend,
		db:          db,
		redisClient: redisClient,
		sessions:    sessions,
		webhooks:    webhooks,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:        HealthHealthy,
		ActiveWatches: s.sessions.ActiveWatches(),
	}

	if s.webhooks.MonitorRunning() {
		status.PoolMonitorStatus = MonitorRunning
	} else {
		status.PoolMonitorStatus = MonitorStopped
	}

	status.BackendStatus = s.checkBackend(ctx)
	status.DatabaseStatus = s.checkDatabase(ctx)
	status.RedisStatus = s.checkRedis(ctx)

	state, requests, failures := s.backend.BreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if status.BackendStatus == StatusDisconnected ||
		status.DatabaseStatus == StatusDisconnected ||
		status.RedisStatus == StatusDisconnected {
		status.Status = HealthUnhealthy
	}

	// An open breaker means requests are being refused, not that a
	// dependency is down.
	if state == string(apiclient.BreakerOpen) && status.Status == HealthHealthy {
		status.Status = HealthDegraded
	}

	return status
}

func (s *healthService) checkBackend(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.backend.Ping(ctx); err != nil {
		return StatusDisconnected
	}
	return StatusConnected
}

func (s *healthService) checkDatabase(ctx context.Context) string {
	if s.db == nil {
		return StatusDisabled
	}
	if err := s.db.Ping(ctx); err != nil {
		return StatusDisconnected
	}
	return StatusConnected
}

func (s *healthService) checkRedis(ctx context.Context) string {
	if s.redisClient == nil {
		return StatusDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return StatusDisconnected
	}
	return StatusConnected
}
