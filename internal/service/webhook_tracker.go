package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/scheduler"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

type webhookTracker struct {
	backend WebhookBackend
	cache   *cache.Cache
	logger  *zap.Logger
	monitor PoolMonitor

	// monitorMu serialises monitor start and stop decisions. It is never held
	// by the monitor's own refresh, so Stop can wait for that refresh.
	monitorMu sync.Mutex

	mu     sync.Mutex
	loaded map[string]struct{}
	pool   *models.PoolStatus
	closed bool
}

// NewWebhookTracker creates the tracker. Its pool monitor polls every
// polling.pool_interval_ms while at least one webhook config is loaded.
func NewWebhookTracker(cfg *config.Config, backend WebhookBackend, c *cache.Cache, logger *zap.Logger) WebhookTracker {
	t := &webhookTracker{
		backend: backend,
		cache:   c,
		logger:  logger,
		loaded:  make(map[string]struct{}),
	}
	t.monitor = NewPoolMonitor(cfg.Polling.PoolInterval(), t, logger.Named("pool_monitor"))
	return t
}

// GetConfig returns *apierrors.NotFoundError when the session has no webhook.
func (t *webhookTracker) GetConfig(ctx context.Context, sessionID string) (*models.WebhookConfig, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}

	cfg, err := cache.Fetch(ctx, t.cache, cache.WebhookKey(sessionID), func(ctx context.Context) (*models.WebhookConfig, error) {
		return t.backend.GetWebhook(ctx, sessionID)
	})
	if err != nil {
		if apierrors.IsNotFound(err) {
			t.unload(sessionID)
		}
		return nil, fmt.Errorf("get webhook: %w", err)
	}
	t.load(sessionID)
	return cfg, nil
}

// Status reports config and listener state side by side. A missing webhook
// is configured=false rather than an error.
func (t *webhookTracker) Status(ctx context.Context, sessionID string) (*WebhookStatus, error) {
	cfg, err := t.GetConfig(ctx, sessionID)
	if err != nil && !apierrors.IsNotFound(err) {
		return nil, err
	}

	pool, err := t.cachedPool(ctx)
	if err != nil {
		return nil, err
	}

	status := &WebhookStatus{
		Configured:  cfg != nil,
		Config:      cfg,
		IsListening: pool.IsListening(sessionID),
	}
	if s, ok := pool.Find(sessionID); ok {
		entry := *s
		status.PoolSession = &entry
	}
	return status, nil
}

// Create configures the webhook and optionally starts it. The two calls are
// not atomic: when the start fails the created webhook is returned together
// with a *apierrors.PartialSuccessError. The create itself is never retried.
func (t *webhookTracker) Create(ctx context.Context, sessionID string, req models.WebhookCreateRequest, autoStart bool) (*WebhookCreateResult, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	req, err := validation.Webhook(req)
	if err != nil {
		return nil, err
	}

	created, err := t.backend.CreateWebhook(ctx, sessionID, req)
	if err != nil {
		return nil, fmt.Errorf("create webhook: %w", err)
	}
	t.cache.Invalidate(cache.WebhookKey(sessionID))
	t.load(sessionID)

	t.logger.Info("Webhook created",
		zap.String("session_id", sessionID),
		zap.String("url", created.URL),
		zap.Strings("events", created.Events))

	result := &WebhookCreateResult{Webhook: created}
	if !autoStart {
		return result, nil
	}

	cfg, err := t.Start(ctx, sessionID)
	result.Config = cfg
	if err != nil {
		t.logger.Warn("Webhook created but not started",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return result, &apierrors.PartialSuccessError{
			Completed: "create",
			Failed:    "start",
			Err:       err,
		}
	}
	result.Started = cfg.IsActive
	return result, nil
}

func (t *webhookTracker) Start(ctx context.Context, sessionID string) (*models.WebhookConfig, error) {
	return t.toggle(ctx, sessionID, true)
}

func (t *webhookTracker) Stop(ctx context.Context, sessionID string) (*models.WebhookConfig, error) {
	return t.toggle(ctx, sessionID, false)
}

// toggle sends the start or stop call once and then re-reads the config. A
// remote rejection is ignored when the re-read state already matches the
// intent, e.g. starting a listener that is already running.
func (t *webhookTracker) toggle(ctx context.Context, sessionID string, active bool) (*models.WebhookConfig, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}

	op := "stop"
	call := t.backend.StopWebhook
	if active {
		op = "start"
		call = t.backend.StartWebhook
	}

	callErr := call(ctx, sessionID)
	// The call may have landed even when no answer came back.
	t.cache.Invalidate(cache.WebhookKey(sessionID), cache.KeyPool)

	var remote *apierrors.RemoteError
	if callErr != nil && !errors.As(callErr, &remote) {
		return nil, fmt.Errorf("%s webhook: %w", op, callErr)
	}

	cfg, err := t.refetch(ctx, sessionID)
	if err != nil {
		if callErr != nil {
			return nil, fmt.Errorf("%s webhook: %w", op, callErr)
		}
		return nil, fmt.Errorf("%s webhook: %w", op, err)
	}

	if cfg.IsActive == active {
		if callErr != nil {
			t.logger.Info("Webhook already in requested state",
				zap.String("session_id", sessionID),
				zap.String("op", op),
				zap.Error(callErr))
		}
		t.logger.Info("Webhook toggled",
			zap.String("session_id", sessionID),
			zap.Bool("is_active", cfg.IsActive))
		return cfg, nil
	}

	if callErr != nil {
		return cfg, fmt.Errorf("%s webhook: %w", op, callErr)
	}
	// The call was accepted but the state has not caught up yet.
	return cfg, nil
}

func (t *webhookTracker) refetch(ctx context.Context, sessionID string) (*models.WebhookConfig, error) {
	cfg, err := t.backend.GetWebhook(ctx, sessionID)
	if err != nil {
		t.cache.Invalidate(cache.WebhookKey(sessionID))
		return nil, err
	}
	t.cache.Put(cache.WebhookKey(sessionID), cfg)
	t.load(sessionID)
	return cfg, nil
}

// Delete removes the webhook. A webhook that is already gone counts as
// deleted=false without an error.
func (t *webhookTracker) Delete(ctx context.Context, sessionID string) (bool, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return false, err
	}

	err := t.backend.DeleteWebhook(ctx, sessionID)
	t.cache.Invalidate(cache.WebhookKey(sessionID), cache.KeyPool)
	if err != nil && !apierrors.IsNotFound(err) {
		return false, fmt.Errorf("delete webhook: %w", err)
	}
	t.unload(sessionID)

	if err != nil {
		t.logger.Info("Webhook already deleted", zap.String("session_id", sessionID))
		return false, nil
	}
	t.logger.Info("Webhook deleted", zap.String("session_id", sessionID))
	return true, nil
}

// PollPoolStatus fetches the pool and replaces the whole snapshot.
func (t *webhookTracker) PollPoolStatus(ctx context.Context) (*models.PoolStatus, error) {
	pool, err := t.backend.PoolStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("poll pool status: %w", err)
	}
	t.cache.Put(cache.KeyPool, pool)

	t.mu.Lock()
	t.pool = pool
	t.mu.Unlock()
	return pool, nil
}

func (t *webhookTracker) cachedPool(ctx context.Context) (*models.PoolStatus, error) {
	pool, err := cache.Fetch(ctx, t.cache, cache.KeyPool, t.backend.PoolStatus)
	if err != nil {
		return nil, fmt.Errorf("pool status: %w", err)
	}

	t.mu.Lock()
	t.pool = pool
	t.mu.Unlock()
	return pool, nil
}

// PoolSnapshot returns the last polled pool, or nil before the first poll.
func (t *webhookTracker) PoolSnapshot() *models.PoolStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pool
}

// MonitorRunning reports whether the pool monitor is polling.
func (t *webhookTracker) MonitorRunning() bool {
	return t.monitor.IsRunning()
}

func (t *webhookTracker) load(sessionID string) {
	t.monitorMu.Lock()
	defer t.monitorMu.Unlock()

	t.mu.Lock()
	closed := t.closed
	if !closed {
		t.loaded[sessionID] = struct{}{}
	}
	t.mu.Unlock()
	if closed {
		return
	}

	if err := t.monitor.Start(); err != nil && !errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
		t.logger.Error("Failed to start pool monitor", zap.Error(err))
	}
}

func (t *webhookTracker) unload(sessionID string) {
	t.monitorMu.Lock()
	defer t.monitorMu.Unlock()

	t.mu.Lock()
	delete(t.loaded, sessionID)
	stop := len(t.loaded) == 0
	t.mu.Unlock()

	if stop {
		t.stopMonitor()
	}
}

func (t *webhookTracker) stopMonitor() {
	if err := t.monitor.Stop(); err != nil && !errors.Is(err, scheduler.ErrSchedulerNotRunning) {
		t.logger.Error("Failed to stop pool monitor", zap.Error(err))
	}
}

// Close stops the pool monitor and forgets every loaded config.
func (t *webhookTracker) Close() {
	t.monitorMu.Lock()
	defer t.monitorMu.Unlock()

	t.mu.Lock()
	t.closed = true
	t.loaded = make(map[string]struct{})
	t.mu.Unlock()

	t.stopMonitor()
}
