package service

import (
	"context"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
)

// SessionBackend is the part of the backend API the session tracker uses.
type SessionBackend interface {
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.CreateSessionResponse, error)
	VerifyCode(ctx context.Context, id, code string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, id string) (*models.SessionStatus, error)
	DeleteSession(ctx context.Context, id string) (*models.DeleteSessionResponse, error)
}

type WebhookBackend interface {
	GetWebhook(ctx context.Context, sessionID string) (*models.WebhookConfig, error)
	CreateWebhook(ctx context.Context, sessionID string, req models.WebhookCreateRequest) (*models.WebhookResponse, error)
	DeleteWebhook(ctx context.Context, sessionID string) error
	StartWebhook(ctx context.Context, sessionID string) error
	StopWebhook(ctx context.Context, sessionID string) error
	PoolStatus(ctx context.Context) (*models.PoolStatus, error)
}

type ChatBackend interface {
	GetChats(ctx context.Context, sessionID string, params models.GetChatsParams) (*models.ChatsResponse, error)
	GetChat(ctx context.Context, sessionID string, chatID int64) (*models.Chat, error)
	GetHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams) (*models.HistoryResponse, error)
	GetContacts(ctx context.Context, sessionID string, params models.GetContactsParams) (*models.ContactsResponse, error)
}

type MessageBackend interface {
	SendText(ctx context.Context, sessionID string, req models.SendTextRequest) (*models.MessageResponse, error)
	SendMedia(ctx context.Context, sessionID string, req models.SendMediaRequest) (*models.MessageResponse, error)
	SendBulk(ctx context.Context, sessionID string, req models.SendBulkRequest) ([]models.MessageResponse, error)
	GetJobStatus(ctx context.Context, jobID string) (*models.MessageJob, error)
}

type AuthBackend interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*models.LoginResponse, error)
}

// Backend is the full API client.
type Backend interface {
	SessionBackend
	WebhookBackend
	ChatBackend
	MessageBackend
	AuthBackend
}

// BackendHealth reports backend reachability and breaker state for health checks.
type BackendHealth interface {
	Ping(ctx context.Context) error
	BreakerStatus() (state string, requests, failures uint32)
}

type SessionTracker interface {
	Create(ctx context.Context, req models.CreateSessionRequest) (*models.CreateSessionResponse, error)
	VerifyCode(ctx context.Context, id, code string) (*models.Session, error)
	Poll(ctx context.Context, id string) (*models.SessionStatus, error)
	Get(ctx context.Context, id string) (*models.SessionStatus, error)
	List(ctx context.Context) ([]models.Session, error)
	Delete(ctx context.Context, id string) (bool, error)
	WatchAuth(ctx context.Context, id string, opts AuthWatchOptions) (*AuthWatch, error)
	Watch(id string) (*AuthWatch, bool)
	CancelWatch(id string) bool
	CancelAll() int
	ActiveWatches() int
	Close()
}

type WebhookTracker interface {
	GetConfig(ctx context.Context, sessionID string) (*models.WebhookConfig, error)
	Status(ctx context.Context, sessionID string) (*WebhookStatus, error)
	Create(ctx context.Context, sessionID string, req models.WebhookCreateRequest, autoStart bool) (*WebhookCreateResult, error)
	Start(ctx context.Context, sessionID string) (*models.WebhookConfig, error)
	Stop(ctx context.Context, sessionID string) (*models.WebhookConfig, error)
	Delete(ctx context.Context, sessionID string) (bool, error)
	PollPoolStatus(ctx context.Context) (*models.PoolStatus, error)
	PoolSnapshot() *models.PoolStatus
	MonitorRunning() bool
	Close()
}

type ChatService interface {
	GetChats(ctx context.Context, sessionID string, params models.GetChatsParams) (*models.ChatsResponse, error)
	GetChatInfo(ctx context.Context, sessionID string, chatID int64) (*models.Chat, error)
	GetHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams) (*models.HistoryResponse, error)
	GetContacts(ctx context.Context, sessionID string, params models.GetContactsParams) (*models.ContactsResponse, error)
	WatchHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams, opts HistoryWatchOptions) (*Watch[*models.HistoryResponse], error)
}

type MessageService interface {
	SendText(ctx context.Context, sessionID string, req models.SendTextRequest) (*models.MessageResponse, error)
	SendMedia(ctx context.Context, sessionID string, req models.SendMediaRequest) (*models.MessageResponse, error)
	SendMediaFile(ctx context.Context, sessionID string, file MediaFile) (*models.MessageResponse, error)
	SendBulk(ctx context.Context, sessionID string, req models.SendBulkRequest) ([]models.MessageResponse, error)
	GetJobStatus(ctx context.Context, jobID string) (*models.MessageJob, error)
	WatchJob(ctx context.Context, jobID string) (*Watch[*models.MessageJob], error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	// Register creates the account and logs straight in with it.
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context) error
}

type EventService interface {
	Receive(ctx context.Context, delivery EventDelivery) (*models.InboxEvent, bool, error)
	List(ctx context.Context, filter repository.EventFilter) (*EventPage, error)
}

// PoolMonitor polls the listener pool while webhook configs are loaded.
type PoolMonitor interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
