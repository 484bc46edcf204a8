package credentials

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

type failingStore struct {
	MemoryStore
	purgeErr error
}

func (s *failingStore) Purge(_ context.Context) error {
	return s.purgeErr
}

func TestManager_InitEmptyStore(t *testing.T) {
	m := NewManager(NewMemoryStore(), zap.NewNop())

	require.NoError(t, m.Init(context.Background()))
	assert.False(t, m.Authenticated())

	_, err := m.User()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestManager_InitLoadsPersisted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, &Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &models.User{Username: "admin"},
	}))

	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Init(ctx))

	assert.Equal(t, "access", m.AccessToken())
	assert.Equal(t, "refresh", m.RefreshToken())
	u, err := m.User()
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
}

func TestManager_PurgeNotifiesListeners(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Set(ctx, &Credentials{AccessToken: "access"}))

	var reasons []string
	m.OnPurge(func(reason string) { reasons = append(reasons, reason) })

	require.NoError(t, m.Purge(ctx, ReasonUnauthorized))
	assert.False(t, m.Authenticated())
	assert.Equal(t, []string{ReasonUnauthorized}, reasons)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoCredentials)

	// Already signed out: nothing to announce.
	require.NoError(t, m.Purge(ctx, ReasonLogout))
	assert.Len(t, reasons, 1)
}

func TestManager_PurgeClearsMemoryWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{purgeErr: errors.New("disk full")}
	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Set(ctx, &Credentials{AccessToken: "access"}))

	err := m.Purge(ctx, ReasonLogout)
	assert.Error(t, err)
	assert.Empty(t, m.AccessToken())
}

func TestFromLogin(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	creds := FromLogin(&models.LoginResponse{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiresIn:    900,
		User:         models.User{ID: "u1"},
	}, now)

	assert.Equal(t, now.Add(15*time.Minute), creds.ExpiresAt)
	assert.False(t, creds.Expired(now))
	assert.True(t, creds.Expired(now.Add(16*time.Minute)))
	assert.Equal(t, "u1", creds.User.ID)
}
