// Package cache is the read-through cache shared by the trackers. Entries are
// keyed by session or webhook identity and are dropped, never patched, after
// a mutation.
package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/config"
)

const (
	KeySessions = "sessions"
	KeyPool     = "pool"
)

// Per-session cache keys.
func SessionKey(id string) string { return "session:" + id }
func WebhookKey(id string) string { return "webhook:" + id }
func ChatsKey(id string) string   { return "chats:" + id }

type Cache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
	webhookTTL time.Duration
	poolTTL    time.Duration
	logger     *zap.Logger
}

// New creates a cache using the TTLs in cfg.
func New(cfg *config.CacheConfig, logger *zap.Logger) *Cache {
	defaultTTL := time.Duration(cfg.DefaultTTLMs) * time.Millisecond
	return &Cache{
		store:      gocache.New(defaultTTL, 2*defaultTTL),
		defaultTTL: defaultTTL,
		webhookTTL: time.Duration(cfg.WebhookTTLMs) * time.Millisecond,
		poolTTL:    time.Duration(cfg.PoolTTLMs) * time.Millisecond,
		logger:     logger,
	}
}

func (c *Cache) ttlFor(key string) time.Duration {
	switch {
	case key == KeyPool:
		return c.poolTTL
	case strings.HasPrefix(key, "webhook:"):
		return c.webhookTTL
	default:
		return c.defaultTTL
	}
}

// Fetch returns the cached value for key or calls load and caches its result.
// Errors from load are returned and never cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.store.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		c.logger.Warn("Cache entry has unexpected type, reloading", zap.String("key", key))
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.store.Set(key, v, c.ttlFor(key))
	return v, nil
}

// Put replaces the entry for key with a freshly fetched value.
func (c *Cache) Put(key string, v any) {
	c.store.Set(key, v, c.ttlFor(key))
}

// Invalidate drops keys. Missing keys are ignored.
func (c *Cache) Invalidate(keys ...string) {
	for _, k := range keys {
		c.store.Delete(k)
	}
}

// InvalidateSession drops everything cached for a session, plus the list.
func (c *Cache) InvalidateSession(id string) {
	c.Invalidate(KeySessions, SessionKey(id), WebhookKey(id), ChatsKey(id))
}
