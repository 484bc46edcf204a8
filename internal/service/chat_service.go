package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

type chatService struct {
	backend         ChatBackend
	cache           *cache.Cache
	logger          *zap.Logger
	historyInterval time.Duration
}

// NewChatService creates the chat reader. History watches poll at
// polling.history_interval_ms.
func NewChatService(cfg *config.Config, backend ChatBackend, c *cache.Cache, logger *zap.Logger) ChatService {
	return &chatService{
		backend:         backend,
		cache:           c,
		logger:          logger,
		historyInterval: cfg.Polling.HistoryInterval(),
	}
}

func validatePaging(limit, offset int) error {
	fields := map[string]string{}
	if limit < 0 {
		fields["limit"] = "must not be negative"
	}
	if offset < 0 {
		fields["offset"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &apierrors.ValidationError{Fields: fields}
	}
	return nil
}

// GetChats caches only the default first page; paged or filtered reads go
// straight to the backend.
func (s *chatService) GetChats(ctx context.Context, sessionID string, params models.GetChatsParams) (*models.ChatsResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validatePaging(params.Limit, params.Offset); err != nil {
		return nil, err
	}

	load := func(ctx context.Context) (*models.ChatsResponse, error) {
		return s.backend.GetChats(ctx, sessionID, params)
	}

	var (
		chats *models.ChatsResponse
		err   error
	)
	if params == (models.GetChatsParams{}) {
		chats, err = cache.Fetch(ctx, s.cache, cache.ChatsKey(sessionID), load)
	} else {
		chats, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get chats: %w", err)
	}
	return chats, nil
}

func (s *chatService) GetChatInfo(ctx context.Context, sessionID string, chatID int64) (*models.Chat, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}

	chat, err := s.backend.GetChat(ctx, sessionID, chatID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return chat, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams) (*models.HistoryResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validatePaging(params.Limit, 0); err != nil {
		return nil, err
	}

	history, err := s.backend.GetHistory(ctx, sessionID, chatID, params)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return history, nil
}

func (s *chatService) GetContacts(ctx context.Context, sessionID string, params models.GetContactsParams) (*models.ContactsResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validatePaging(params.Limit, params.Offset); err != nil {
		return nil, err
	}

	contacts, err := s.backend.GetContacts(ctx, sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}
	return contacts, nil
}

// WatchHistory re-reads the chat history until ctx is cancelled, the watch
// is cancelled, or a message newer than opts.AfterID arrives. A missing
// session or chat ends it.
func (s *chatService) WatchHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams, opts HistoryWatchOptions) (*Watch[*models.HistoryResponse], error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if opts.AfterID < 0 {
		return nil, apierrors.NewValidationError("after_id", "must not be negative")
	}

	logger := s.logger.With(zap.String("session_id", sessionID), zap.Int64("chat_id", chatID))
	return startWatch(ctx, logger, s.historyInterval, func(ctx context.Context) (*models.HistoryResponse, bool, error) {
		history, err := s.backend.GetHistory(ctx, sessionID, chatID, params)
		if err != nil {
			return nil, apierrors.IsNotFound(err), err
		}
		return history, opts.AfterID > 0 && history.NewestID() > opts.AfterID, nil
	})
}
