package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
	repomocks "github.com/ppopeskul/telegram-dashboard/internal/repository/mocks"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

const eventBody = `{"id":"evt-1","session_id":"` + sessionID + `","type":"message.new","timestamp":"2026-03-01T10:00:00Z","data":{"text":"hi"}}`

func delivery(body string, headers map[string]string) service.EventDelivery {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return service.EventDelivery{Header: h, Body: []byte(body)}
}

func TestEventService_Receive(t *testing.T) {
	secret := []byte("s3cret")

	tests := []struct {
		name      string
		secret    string
		delivery  service.EventDelivery
		setup     func(repo *repomocks.MockEventRepository)
		wantErr   error
		wantValid bool
		validate  func(t *testing.T, e *models.InboxEvent, inserted bool)
	}{
		{
			name:   "signed delivery is stored verified",
			secret: string(secret),
			delivery: delivery(eventBody, map[string]string{
				service.HeaderDelivery:  "dlv-1",
				service.HeaderEvent:     "message.new",
				service.HeaderSession:   sessionID,
				service.HeaderSignature: service.Sign(secret, []byte(eventBody)),
			}),
			setup: func(repo *repomocks.MockEventRepository) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.InboxEvent) (bool, error) {
					e.ID = 1
					return true, nil
				})
			},
			validate: func(t *testing.T, e *models.InboxEvent, inserted bool) {
				assert.True(t, inserted)
				assert.True(t, e.Verified)
				assert.Equal(t, "dlv-1", e.DeliveryID)
				assert.Equal(t, "message.new", e.EventType)
				assert.Equal(t, sessionID, e.SessionID)
				assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), e.OccurredAt.UTC())
			},
		},
		{
			name:   "bad signature",
			secret: string(secret),
			delivery: delivery(eventBody, map[string]string{
				service.HeaderDelivery:  "dlv-1",
				service.HeaderSignature: service.Sign([]byte("other"), []byte(eventBody)),
			}),
			wantErr: service.ErrInvalidSignature,
		},
		{
			name:     "missing signature",
			secret:   string(secret),
			delivery: delivery(eventBody, map[string]string{service.HeaderDelivery: "dlv-1"}),
			wantErr:  service.ErrInvalidSignature,
		},
		{
			name:     "no secret falls back to payload fields",
			delivery: delivery(eventBody, nil),
			setup: func(repo *repomocks.MockEventRepository) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			validate: func(t *testing.T, e *models.InboxEvent, inserted bool) {
				assert.False(t, e.Verified)
				assert.Equal(t, "evt-1", e.DeliveryID)
				assert.Equal(t, string(models.EventNewMessage), e.EventType)
			},
		},
		{
			name:     "duplicate returns stored event",
			delivery: delivery(eventBody, map[string]string{service.HeaderDelivery: "dlv-1"}),
			setup: func(repo *repomocks.MockEventRepository) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetByDeliveryID(gomock.Any(), "dlv-1").Return(&models.InboxEvent{ID: 7, DeliveryID: "dlv-1"}, nil)
			},
			validate: func(t *testing.T, e *models.InboxEvent, inserted bool) {
				assert.False(t, inserted)
				assert.Equal(t, int64(7), e.ID)
			},
		},
		{
			name:     "missing delivery id",
			delivery: delivery(`{"type":"message.new"}`, nil),
			wantErr:  service.ErrMissingDeliveryID,
		},
		{
			name:      "not json",
			delivery:  delivery(`hello`, map[string]string{service.HeaderDelivery: "dlv-1"}),
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockEventRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			svc := service.NewEventService(&config.ReceiverConfig{Enabled: true, Secret: tt.secret}, repo, zap.NewNop())
			event, inserted, err := svc.Receive(context.Background(), tt.delivery)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantValid:
				assert.True(t, apierrors.IsValidation(err))
			default:
				require.NoError(t, err)
				tt.validate(t, event, inserted)
			}
		})
	}
}

func TestEventService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockEventRepository(ctrl)

	normalized := repository.EventFilter{SessionID: sessionID, Limit: repository.DefaultListLimit}
	repo.EXPECT().List(gomock.Any(), normalized).Return([]models.InboxEvent{{ID: 2}, {ID: 1}}, nil)
	repo.EXPECT().Count(gomock.Any(), normalized).Return(int64(12), nil)

	svc := service.NewEventService(&config.ReceiverConfig{}, repo, zap.NewNop())
	page, err := svc.List(context.Background(), repository.EventFilter{SessionID: sessionID})
	require.NoError(t, err)
	assert.Len(t, page.Events, 2)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, repository.DefaultListLimit, page.Limit)
}

func TestEventService_Disabled(t *testing.T) {
	svc := service.NewEventService(&config.ReceiverConfig{}, nil, zap.NewNop())

	_, _, err := svc.Receive(context.Background(), delivery(eventBody, nil))
	assert.ErrorIs(t, err, service.ErrEventStoreDisabled)

	_, err = svc.List(context.Background(), repository.EventFilter{})
	assert.ErrorIs(t, err, service.ErrEventStoreDisabled)
}
