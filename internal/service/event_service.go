package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
)

// Headers set by the backend on every webhook delivery.
const (
	HeaderEvent     = "X-Telegram-Event"
	HeaderSession   = "X-Telegram-Session"
	HeaderDelivery  = "X-Telegram-Delivery"
	HeaderSignature = "X-Telegram-Signature"

	signaturePrefix = "sha256="
)

type eventService struct {
	repo   repository.EventRepository
	secret []byte
	logger *zap.Logger
	now    func() time.Time
}

// NewEventService creates the inbox. repo may be nil when no database is
// configured; every call then fails with ErrEventStoreDisabled.
func NewEventService(cfg *config.ReceiverConfig, repo repository.EventRepository, logger *zap.Logger) EventService {
	return &eventService{
		repo:   repo,
		secret: []byte(cfg.Secret),
		logger: logger,
		now:    time.Now,
	}
}

// Sign returns the signature header value for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func verifySignature(secret, body []byte, header string) bool {
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// Receive verifies and stores one delivery. The bool is false when the
// delivery id was already stored; the stored event is returned in that case.
func (s *eventService) Receive(ctx context.Context, d EventDelivery) (*models.InboxEvent, bool, error) {
	if s.repo == nil {
		return nil, false, ErrEventStoreDisabled
	}

	verified := false
	if len(s.secret) > 0 {
		if !verifySignature(s.secret, d.Body, d.Header.Get(HeaderSignature)) {
			s.logger.Warn("Rejected webhook delivery with bad signature",
				zap.String("delivery_id", d.Header.Get(HeaderDelivery)))
			return nil, false, ErrInvalidSignature
		}
		verified = true
	}

	var payload models.WebhookEvent
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		return nil, false, apierrors.NewValidationError("body", "must be a JSON webhook event")
	}

	event := &models.InboxEvent{
		DeliveryID: firstNonEmpty(d.Header.Get(HeaderDelivery), payload.ID),
		SessionID:  firstNonEmpty(d.Header.Get(HeaderSession), payload.SessionID),
		EventType:  firstNonEmpty(d.Header.Get(HeaderEvent), string(payload.Type)),
		Payload:    json.RawMessage(d.Body),
		Verified:   verified,
		OccurredAt: payload.Timestamp,
	}
	if event.DeliveryID == "" {
		return nil, false, ErrMissingDeliveryID
	}
	if event.EventType == "" {
		return nil, false, apierrors.NewValidationError("event_type", "is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}

	inserted, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, false, fmt.Errorf("store event: %w", err)
	}
	if !inserted {
		existing, err := s.repo.GetByDeliveryID(ctx, event.DeliveryID)
		if err != nil {
			return nil, false, fmt.Errorf("load duplicate event: %w", err)
		}
		s.logger.Debug("Duplicate webhook delivery ignored", zap.String("delivery_id", event.DeliveryID))
		return existing, false, nil
	}

	s.logger.Info("Webhook event received",
		zap.String("delivery_id", event.DeliveryID),
		zap.String("session_id", event.SessionID),
		zap.String("event_type", event.EventType),
		zap.Bool("verified", verified))
	return event, true, nil
}

func (s *eventService) List(ctx context.Context, filter repository.EventFilter) (*EventPage, error) {
	if s.repo == nil {
		return nil, ErrEventStoreDisabled
	}
	filter = filter.Normalized()

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &EventPage{
		Events: events,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
