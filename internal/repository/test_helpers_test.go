package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
)

const (
	sessionA = "6f1c2b9e-4a0d-4c55-9a57-1b1a3e7f0c11"
	sessionB = "0d7e5d8a-2f4b-4e3c-8b6a-9c2d1e0f3a22"
)

func newEvent(deliveryID, sessionID string, eventType models.EventType) *models.InboxEvent {
	payload, _ := json.Marshal(map[string]any{"type": eventType, "session_id": sessionID})
	return &models.InboxEvent{
		DeliveryID: deliveryID,
		SessionID:  sessionID,
		EventType:  string(eventType),
		Payload:    payload,
		Verified:   true,
		OccurredAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// insertEvents stores count events for sessionID, sleeping briefly so that
// received_at strictly increases.
func insertEvents(t *testing.T, repo repository.EventRepository, prefix, sessionID string, eventType models.EventType, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		inserted, err := repo.Insert(context.Background(), newEvent(fmt.Sprintf("%s-%d", prefix, i), sessionID, eventType))
		require.NoError(t, err)
		require.True(t, inserted)
		time.Sleep(2 * time.Millisecond)
	}
}
