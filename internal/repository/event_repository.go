package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

const eventColumns = `id, delivery_id, session_id, event_type, payload, verified, occurred_at, received_at`

// eventRow scans payload as []byte so the driver buffer is copied.
type eventRow struct {
	models.InboxEvent
	Payload []byte `db:"payload"`
}

func (r eventRow) event() models.InboxEvent {
	e := r.InboxEvent
	e.Payload = r.Payload
	return e
}

type eventRepository struct {
	db *sqlx.DB
}

// NewEventRepository stores inbox events in webhook_events.
func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) Insert(ctx context.Context, e *models.InboxEvent) (bool, error) {
	query := `
		INSERT INTO webhook_events (delivery_id, session_id, event_type, payload, verified, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (delivery_id) DO NOTHING
		RETURNING id, received_at
	`

	payload := e.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	err := r.db.QueryRowxContext(ctx, query,
		e.DeliveryID, e.SessionID, e.EventType, string(payload), e.Verified, e.OccurredAt,
	).Scan(&e.ID, &e.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert event: %w", err)
	}

	return true, nil
}

func (r *eventRepository) GetByDeliveryID(ctx context.Context, deliveryID string) (*models.InboxEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM webhook_events WHERE delivery_id = $1`

	var row eventRow
	err := r.db.GetContext(ctx, &row, query, deliveryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	e := row.event()
	return &e, nil
}

// List returns events newest first.
func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]models.InboxEvent, error) {
	where, args := filter.where()
	limit, offset := filter.page()

	query := fmt.Sprintf(`
		SELECT %s
		FROM webhook_events
		%s
		ORDER BY received_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, eventColumns, where, len(args)+1, len(args)+2)

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, limit, offset)...); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]models.InboxEvent, len(rows))
	for i, row := range rows {
		events[i] = row.event()
	}
	return events, nil
}

func (r *eventRepository) Count(ctx context.Context, filter EventFilter) (int64, error) {
	where, args := filter.where()

	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM webhook_events `+where, args...); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return count, nil
}

func (f EventFilter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.SessionID != "" {
		args = append(args, f.SessionID)
		conds = append(conds, fmt.Sprintf("session_id = $%d", len(args)))
	}
	if f.EventType != "" {
		args = append(args, f.EventType)
		conds = append(conds, fmt.Sprintf("event_type = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Normalized returns the filter with its paging clamped to the allowed range.
func (f EventFilter) Normalized() EventFilter {
	f.Limit, f.Offset = f.page()
	return f
}

func (f EventFilter) page() (int, int) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
