package repository

import (
	"context"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// Repository groups the stores backed by PostgreSQL.
type Repository interface {
	Ping(ctx context.Context) error
	Event() EventRepository
}

// EventFilter narrows List and Count. Empty fields match everything.
type EventFilter struct {
	SessionID string
	EventType string
	Limit     int
	Offset    int
}

// EventRepository stores received webhook deliveries.
type EventRepository interface {
	// Insert stores e and fills its ID and ReceivedAt. It returns false when
	// a delivery with the same DeliveryID is already stored.
	Insert(ctx context.Context, e *models.InboxEvent) (bool, error)
	GetByDeliveryID(ctx context.Context, deliveryID string) (*models.InboxEvent, error)
	List(ctx context.Context, filter EventFilter) ([]models.InboxEvent, error)
	Count(ctx context.Context, filter EventFilter) (int64, error)
}
