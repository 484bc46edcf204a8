package service_test

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

const (
	sessionID = "3b8e8f0a-6c1d-4b8e-9f2a-1d2c3b4a5e6f"
	otherID   = "9a7b6c5d-4e3f-4a1b-8c2d-0e1f2a3b4c5d"
)

func testConfig() *config.Config {
	return &config.Config{
		Polling: config.PollingConfig{
			SessionIntervalMs: 20,
			HistoryIntervalMs: 20,
			PoolIntervalMs:    20,
			JobIntervalMs:     20,
		},
		QR: config.QRConfig{
			MaxAttempts:    3,
			AttemptTimeout: 120,
		},
		Cache: config.CacheConfig{
			DefaultTTLMs: 30000,
			WebhookTTLMs: 10000,
			PoolTTLMs:    3000,
		},
	}
}

func testCache() *cache.Cache {
	return cache.New(&testConfig().Cache, zap.NewNop())
}

func notFound(msg string) error {
	return apierrors.FromResponse(http.StatusNotFound, &apierrors.APIErrorBody{Code: "NOT_FOUND", Message: msg})
}

func remote(status int, code string) error {
	return apierrors.FromResponse(status, &apierrors.APIErrorBody{Code: code, Message: code})
}

func waitingStatus() *models.SessionStatus {
	return &models.SessionStatus{
		Session: models.Session{ID: sessionID, AuthState: models.AuthStateCodeSent},
		Status:  models.StatusWaiting,
	}
}

func authenticatedStatus() *models.SessionStatus {
	return &models.SessionStatus{
		Session: models.Session{ID: sessionID, AuthState: models.AuthStateAuthenticated, IsActive: true},
		Status:  models.StatusAuthenticated,
	}
}

// eventually is long enough for a handful of 20ms polls.
const eventually = 2 * time.Second
