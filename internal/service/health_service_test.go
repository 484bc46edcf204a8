package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ppopeskul/telegram-dashboard/internal/repository/mocks"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
	servicemocks "github.com/ppopeskul/telegram-dashboard/internal/service/mocks"
)

type healthMocks struct {
	backend  *servicemocks.MockBackendHealth
	repo     *mocks.MockRepository
	sessions *servicemocks.MockSessionTracker
	webhooks *servicemocks.MockWebhookTracker
}

func newHealthMocks(ctrl *gomock.Controller) healthMocks {
	return healthMocks{
		backend:  servicemocks.NewMockBackendHealth(ctrl),
		repo:     mocks.NewMockRepository(ctrl),
		sessions: servicemocks.NewMockSessionTracker(ctrl),
		webhooks: servicemocks.NewMockWebhookTracker(ctrl),
	}
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name             string
		setupMocks       func(m healthMocks)
		withDB           bool
		expectedStatus   string
		expectedBackend  string
		expectedDatabase string
		expectedMonitor  string
		expectedCBState  string
	}{
		{
			name: "all up",
			setupMocks: func(m healthMocks) {
				m.backend.EXPECT().Ping(gomock.Any()).Return(nil)
				m.backend.EXPECT().BreakerStatus().Return("closed", uint32(100), uint32(5))
				m.repo.EXPECT().Ping(gomock.Any()).Return(nil)
				m.sessions.EXPECT().ActiveWatches().Return(2)
				m.webhooks.EXPECT().MonitorRunning().Return(true)
			},
			withDB:           true,
			expectedStatus:   service.HealthHealthy,
			expectedBackend:  service.StatusConnected,
			expectedDatabase: service.StatusConnected,
			expectedMonitor:  service.MonitorRunning,
			expectedCBState:  "closed",
		},
		{
			name: "database disconnected",
			setupMocks: func(m healthMocks) {
				m.backend.EXPECT().Ping(gomock.Any()).Return(nil)
				m.backend.EXPECT().BreakerStatus().Return("closed", uint32(0), uint32(0))
				m.repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection failed"))
				m.sessions.EXPECT().ActiveWatches().Return(0)
				m.webhooks.EXPECT().MonitorRunning().Return(false)
			},
			withDB:           true,
			expectedStatus:   service.HealthUnhealthy,
			expectedBackend:  service.StatusConnected,
			expectedDatabase: service.StatusDisconnected,
			expectedMonitor:  service.MonitorStopped,
			expectedCBState:  "closed",
		},
		{
			name: "backend unreachable",
			setupMocks: func(m healthMocks) {
				m.backend.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: refused"))
				m.backend.EXPECT().BreakerStatus().Return("closed", uint32(3), uint32(3))
				m.sessions.EXPECT().ActiveWatches().Return(0)
				m.webhooks.EXPECT().MonitorRunning().Return(false)
			},
			expectedStatus:   service.HealthUnhealthy,
			expectedBackend:  service.StatusDisconnected,
			expectedDatabase: service.StatusDisabled,
			expectedMonitor:  service.MonitorStopped,
			expectedCBState:  "closed",
		},
		{
			name: "circuit breaker open",
			setupMocks: func(m healthMocks) {
				m.backend.EXPECT().Ping(gomock.Any()).Return(nil)
				m.backend.EXPECT().BreakerStatus().Return("open", uint32(100), uint32(60))
				m.sessions.EXPECT().ActiveWatches().Return(1)
				m.webhooks.EXPECT().MonitorRunning().Return(true)
			},
			expectedStatus:   service.HealthDegraded,
			expectedBackend:  service.StatusConnected,
			expectedDatabase: service.StatusDisabled,
			expectedMonitor:  service.MonitorRunning,
			expectedCBState:  "open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newHealthMocks(ctrl)
			tt.setupMocks(m)

			var db service.DBPinger
			if tt.withDB {
				db = m.repo
			}

			healthService := service.NewHealthService(m.backend, db, nil, m.sessions, m.webhooks)
			status := healthService.GetHealth(context.Background())

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedBackend, status.BackendStatus)
			assert.Equal(t, tt.expectedDatabase, status.DatabaseStatus)
			assert.Equal(t, service.StatusDisabled, status.RedisStatus)
			assert.Equal(t, tt.expectedMonitor, status.PoolMonitorStatus)
			assert.Equal(t, tt.expectedCBState, status.CircuitBreakerState)
		})
	}
}

func TestHealthService_RedisDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newHealthMocks(ctrl)

	m.backend.EXPECT().Ping(gomock.Any()).Return(nil)
	m.backend.EXPECT().BreakerStatus().Return("closed", uint32(0), uint32(0))
	m.sessions.EXPECT().ActiveWatches().Return(0)
	m.webhooks.EXPECT().MonitorRunning().Return(false)

	// Nothing listens on this port.
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})
	defer redisClient.Close()

	status := service.NewHealthService(m.backend, nil, redisClient, m.sessions, m.webhooks).GetHealth(context.Background())
	assert.Equal(t, service.HealthUnhealthy, status.Status)
	assert.Equal(t, service.StatusDisconnected, status.RedisStatus)
}

func TestHealthService_CircuitBreakerStatusFormatting(t *testing.T) {
	tests := []struct {
		name             string
		requests         uint32
		failures         uint32
		expectedCBStatus string
	}{
		{name: "no requests", expectedCBStatus: "No requests yet"},
		{name: "all successful", requests: 100, expectedCBStatus: "Requests: 100, Failures: 0 (0.0%)"},
		{name: "some failures", requests: 100, failures: 25, expectedCBStatus: "Requests: 100, Failures: 25 (25.0%)"},
		{name: "all failures", requests: 50, failures: 50, expectedCBStatus: "Requests: 50, Failures: 50 (100.0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newHealthMocks(ctrl)

			m.backend.EXPECT().Ping(gomock.Any()).Return(nil)
			m.backend.EXPECT().BreakerStatus().Return("closed", tt.requests, tt.failures)
			m.sessions.EXPECT().ActiveWatches().Return(0)
			m.webhooks.EXPECT().MonitorRunning().Return(false)

			status := service.NewHealthService(m.backend, nil, nil, m.sessions, m.webhooks).GetHealth(context.Background())
			assert.Equal(t, tt.expectedCBStatus, status.CircuitBreakerStatus)
		})
	}
}
