package models

import (
	"encoding/json"
	"time"
)

// InboxEvent is a webhook delivery received and stored by the event inbox.
type InboxEvent struct {
	ID         int64           `db:"id" json:"id"`
	DeliveryID string          `db:"delivery_id" json:"delivery_id"`
	SessionID  string          `db:"session_id" json:"session_id"`
	EventType  string          `db:"event_type" json:"event_type"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
	Verified   bool            `db:"verified" json:"verified"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurred_at"`
	ReceivedAt time.Time       `db:"received_at" json:"received_at"`
}
