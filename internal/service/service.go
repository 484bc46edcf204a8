// Package service holds the dashboard's use cases: session and webhook
// trackers, chat and message operations, auth, the event inbox and health.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
)

// Client is what the services need from the backend API client.
type Client interface {
	Backend
	BackendHealth
}

type Service struct {
	Sessions SessionTracker
	Webhooks WebhookTracker
	Chats    ChatService
	Messages MessageService
	Auth     AuthService
	Events   EventService
	Health   HealthService
}

// Deps are the optional collaborators. Repo, Redis and Uploader may be nil.
// The event inbox uses Repo only when the receiver is enabled.
type Deps struct {
	Client      Client
	Credentials CredentialHolder
	Cache       *cache.Cache
	Repo        repository.Repository
	Redis       redis.Cmdable
	Uploader    media.Uploader
}

// NewService builds every service from deps. Close stops their pollers.
func NewService(cfg *config.Config, deps Deps, logger *zap.Logger) *Service {
	sessions := NewSessionTracker(cfg, deps.Client, deps.Cache, logger.Named("sessions"))
	webhooks := NewWebhookTracker(cfg, deps.Client, deps.Cache, logger.Named("webhooks"))

	var (
		events repository.EventRepository
		db     DBPinger
	)
	if deps.Repo != nil {
		db = deps.Repo
		if cfg.Receiver.Enabled {
			events = deps.Repo.Event()
		}
	}

	return &Service{
		Sessions: sessions,
		Webhooks: webhooks,
		Chats:    NewChatService(cfg, deps.Client, deps.Cache, logger.Named("chats")),
		Messages: NewMessageService(cfg, deps.Client, deps.Uploader, logger.Named("messages")),
		Auth:     NewAuthService(deps.Client, deps.Credentials, logger.Named("auth")),
		Events:   NewEventService(&cfg.Receiver, events, logger.Named("events")),
		Health:   NewHealthService(deps.Client, db, deps.Redis, sessions, webhooks),
	}
}

// Close stops every watch and the pool monitor.
func (s *Service) Close() {
	s.Sessions.Close()
	s.Webhooks.Close()
}
