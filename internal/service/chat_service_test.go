package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
	"github.com/ppopeskul/telegram-dashboard/internal/service/mocks"
)

func newChatService(t *testing.T) (service.ChatService, *mocks.MockChatBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockChatBackend(ctrl)
	return service.NewChatService(testConfig(), backend, testCache(), zap.NewNop()), backend
}

func TestChatService_GetChats(t *testing.T) {
	archived := true

	tests := []struct {
		name        string
		params      models.GetChatsParams
		calls       int
		expectValid bool
	}{
		{name: "first page is cached", params: models.GetChatsParams{}, calls: 1, expectValid: true},
		{name: "paged reads bypass the cache", params: models.GetChatsParams{Limit: 20, Offset: 20}, calls: 2, expectValid: true},
		{name: "archived filter bypasses the cache", params: models.GetChatsParams{Archived: &archived}, calls: 2, expectValid: true},
		{name: "negative limit", params: models.GetChatsParams{Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend := newChatService(t)
			if tt.calls > 0 {
				backend.EXPECT().GetChats(gomock.Any(), sessionID, tt.params).
					Return(&models.ChatsResponse{Chats: []models.Chat{{ID: 1, Type: models.ChatTypePrivate}}, TotalCount: 1}, nil).
					Times(tt.calls)
			}

			for i := 0; i < 2; i++ {
				chats, err := svc.GetChats(context.Background(), sessionID, tt.params)
				if !tt.expectValid {
					assert.True(t, apierrors.IsValidation(err))
					return
				}
				require.NoError(t, err)
				assert.Len(t, chats.Chats, 1)
			}
		})
	}
}

func TestChatService_GetChatInfo_NotFound(t *testing.T) {
	svc, backend := newChatService(t)
	backend.EXPECT().GetChat(gomock.Any(), sessionID, int64(42)).Return(nil, notFound("chat not found"))

	_, err := svc.GetChatInfo(context.Background(), sessionID, 42)
	assert.True(t, apierrors.IsNotFound(err))
}

func TestChatService_GetHistoryAndContacts(t *testing.T) {
	svc, backend := newChatService(t)

	historyParams := models.GetHistoryParams{Limit: 50, OffsetID: 100}
	backend.EXPECT().GetHistory(gomock.Any(), sessionID, int64(7), historyParams).
		Return(&models.HistoryResponse{Messages: []models.ChatMessage{{ID: 99, ChatID: 7, Text: "hi"}}}, nil)
	contactParams := models.GetContactsParams{Search: "ann"}
	backend.EXPECT().GetContacts(gomock.Any(), sessionID, contactParams).
		Return(&models.ContactsResponse{Contacts: []models.Contact{{ID: 5, FirstName: "Ann"}}}, nil)

	history, err := svc.GetHistory(context.Background(), sessionID, 7, historyParams)
	require.NoError(t, err)
	assert.Equal(t, "hi", history.Messages[0].Text)

	contacts, err := svc.GetContacts(context.Background(), sessionID, contactParams)
	require.NoError(t, err)
	assert.Equal(t, "Ann", contacts.Contacts[0].FirstName)

	_, err = svc.GetHistory(context.Background(), "bad", 7, historyParams)
	assert.True(t, apierrors.IsValidation(err))
}

func TestChatService_WatchHistory(t *testing.T) {
	svc, backend := newChatService(t)
	backend.EXPECT().GetHistory(gomock.Any(), sessionID, int64(7), gomock.Any()).
		Return(&models.HistoryResponse{Messages: []models.ChatMessage{{ID: 1}}}, nil).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := svc.WatchHistory(ctx, sessionID, 7, models.GetHistoryParams{}, service.HistoryWatchOptions{})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return w.Snapshot().Polls >= 2 }, eventually, 10*time.Millisecond)
	assert.True(t, w.Running())

	cancel()
	select {
	case <-w.Done():
	case <-time.After(eventually):
		t.Fatal("history watch did not stop")
	}
	assert.ErrorIs(t, w.Err(), service.ErrWatchCancelled)
	require.NotNil(t, w.Snapshot().Latest)
	assert.Len(t, w.Snapshot().Latest.Messages, 1)
}

func TestChatService_WatchHistory_ChatDeleted(t *testing.T) {
	svc, backend := newChatService(t)
	backend.EXPECT().GetHistory(gomock.Any(), sessionID, int64(7), gomock.Any()).Return(nil, notFound("chat not found"))

	w, err := svc.WatchHistory(context.Background(), sessionID, 7, models.GetHistoryParams{}, service.HistoryWatchOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), eventually)
	defer cancel()
	_, err = w.Wait(ctx)
	assert.True(t, apierrors.IsNotFound(err))
}

func TestChatService_WatchHistory_UntilNewMessage(t *testing.T) {
	svc, backend := newChatService(t)
	page := func(ids ...int64) *models.HistoryResponse {
		h := &models.HistoryResponse{}
		for _, id := range ids {
			h.Messages = append(h.Messages, models.ChatMessage{ID: id})
		}
		return h
	}
	gomock.InOrder(
		backend.EXPECT().GetHistory(gomock.Any(), sessionID, int64(7), gomock.Any()).Return(page(10, 9), nil).Times(2),
		backend.EXPECT().GetHistory(gomock.Any(), sessionID, int64(7), gomock.Any()).Return(page(11, 10, 9), nil),
	)

	w, err := svc.WatchHistory(context.Background(), sessionID, 7, models.GetHistoryParams{}, service.HistoryWatchOptions{AfterID: 10})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), eventually)
	defer cancel()
	history, err := w.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), history.NewestID())
	assert.Equal(t, 3, w.Snapshot().Polls)

	_, err = svc.WatchHistory(context.Background(), sessionID, 7, models.GetHistoryParams{}, service.HistoryWatchOptions{AfterID: -1})
	assert.True(t, apierrors.IsValidation(err))
}
