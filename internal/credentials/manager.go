package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// Purge reasons passed to listeners.
const (
	ReasonUnauthorized = "unauthorized"
	ReasonLogout       = "logout"
)

// PurgeListener is told when credentials are dropped, so the owner can send
// the user back to the login flow.
type PurgeListener func(reason string)

// Manager holds the current credentials in memory in front of a Store.
// It is shared by reference with the API client.
type Manager struct {
	store     Store
	logger    *zap.Logger
	mu        sync.RWMutex
	creds     *Credentials
	listeners []PurgeListener
}

// NewManager wraps store. Call Init to load persisted credentials.
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Init loads persisted credentials. An empty store is not an error.
func (m *Manager) Init(ctx context.Context) error {
	creds, err := m.store.Load(ctx)
	if errors.Is(err, ErrNoCredentials) {
		m.logger.Info("No stored credentials, login required")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	m.mu.Lock()
	m.creds = creds
	m.mu.Unlock()

	fields := []zap.Field{}
	if creds.User != nil {
		fields = append(fields, zap.String("user", creds.User.Username))
	}
	m.logger.Info("Credentials loaded", fields...)
	return nil
}

// Set persists creds and then makes them current. A failed save leaves the
// previous credentials in place.
func (m *Manager) Set(ctx context.Context, creds *Credentials) error {
	if err := m.store.Save(ctx, creds); err != nil {
		return err
	}

	m.mu.Lock()
	m.creds = creds
	m.mu.Unlock()
	return nil
}

// AccessToken returns the bearer token, or "" when signed out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds == nil {
		return ""
	}
	return m.creds.AccessToken
}

// RefreshToken returns the refresh token, or "" when signed out.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds == nil {
		return ""
	}
	return m.creds.RefreshToken
}

// User returns a copy of the signed-in user, or ErrNotLoggedIn.
func (m *Manager) User() (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds == nil || m.creds.User == nil {
		return nil, ErrNotLoggedIn
	}
	u := *m.creds.User
	return &u, nil
}

// Authenticated reports whether an access token is held. Expiry is left to
// the backend.
func (m *Manager) Authenticated() bool {
	return m.AccessToken() != ""
}

// OnPurge registers l. Listeners run after the purge, outside the manager
// lock, and only when credentials were actually held.
func (m *Manager) OnPurge(l PurgeListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Purge drops credentials from memory and the store, then notifies listeners.
// Memory is cleared even when the store fails.
func (m *Manager) Purge(ctx context.Context, reason string) error {
	m.mu.Lock()
	had := m.creds != nil
	m.creds = nil
	listeners := make([]PurgeListener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	err := m.store.Purge(ctx)
	if err != nil {
		m.logger.Error("Failed to purge stored credentials", zap.String("reason", reason), zap.Error(err))
	}

	if had {
		m.logger.Info("Credentials purged", zap.String("reason", reason))
		for _, l := range listeners {
			l(reason)
		}
	}
	return err
}
