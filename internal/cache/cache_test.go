package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/config"
)

func newTestCache() *Cache {
	return New(&config.CacheConfig{DefaultTTLMs: 30000, WebhookTTLMs: 50, PoolTTLMs: 20}, zap.NewNop())
}

func TestFetch_LoadsOnceUntilInvalidated(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for i := 0; i < 3; i++ {
		v, err := Fetch(ctx, c, SessionKey("a"), load)
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}
	assert.Equal(t, 1, calls)

	c.Invalidate(SessionKey("a"))
	_, err := Fetch(ctx, c, SessionKey("a"), load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	calls := 0
	boom := errors.New("boom")

	load := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	_, err := Fetch(ctx, c, KeySessions, load)
	assert.ErrorIs(t, err, boom)

	v, err := Fetch(ctx, c, KeySessions, load)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestFetch_PerKeyTTL(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	calls := map[string]int{}
	loader := func(key string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			calls[key]++
			return key, nil
		}
	}

	for _, key := range []string{KeyPool, WebhookKey("a"), SessionKey("a")} {
		_, err := Fetch(ctx, c, key, loader(key))
		require.NoError(t, err)
	}

	time.Sleep(80 * time.Millisecond)

	for _, key := range []string{KeyPool, WebhookKey("a"), SessionKey("a")} {
		_, err := Fetch(ctx, c, key, loader(key))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, calls[KeyPool])
	assert.Equal(t, 2, calls[WebhookKey("a")])
	assert.Equal(t, 1, calls[SessionKey("a")])
}

func TestInvalidateSession(t *testing.T) {
	c := newTestCache()
	c.Put(KeySessions, []string{"a"})
	c.Put(SessionKey("a"), "s")
	c.Put(WebhookKey("a"), "w")
	c.Put(ChatsKey("a"), "c")
	c.Put(SessionKey("b"), "other")

	c.InvalidateSession("a")

	assert.Equal(t, 1, c.store.ItemCount())
	_, kept := c.store.Get(SessionKey("b"))
	assert.True(t, kept)
}
