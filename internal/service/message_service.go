package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

type messageService struct {
	backend     MessageBackend
	uploader    media.Uploader
	logger      *zap.Logger
	jobInterval time.Duration
}

// NewMessageService creates the message service. uploader may be nil, in
// which case SendMediaFile fails with media.ErrUploaderMissing.
func NewMessageService(cfg *config.Config, backend MessageBackend, uploader media.Uploader, logger *zap.Logger) MessageService {
	return &messageService{
		backend:     backend,
		uploader:    uploader,
		logger:      logger,
		jobInterval: cfg.Polling.JobInterval(),
	}
}

func (s *messageService) SendText(ctx context.Context, sessionID string, req models.SendTextRequest) (*models.MessageResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	req.To = strings.TrimSpace(req.To)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp, err := s.backend.SendText(ctx, sessionID, req)
	if err != nil {
		return nil, fmt.Errorf("send text: %w", err)
	}

	s.logger.Info("Text message queued",
		zap.String("session_id", sessionID),
		zap.String("job_id", resp.JobID))
	return resp, nil
}

func (s *messageService) SendMedia(ctx context.Context, sessionID string, req models.SendMediaRequest) (*models.MessageResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, apierrors.NewValidationError("kind", fmt.Sprintf("unsupported media kind %q", req.Kind))
	}
	req.To = strings.TrimSpace(req.To)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp, err := s.backend.SendMedia(ctx, sessionID, req)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", req.Kind, err)
	}

	s.logger.Info("Media message queued",
		zap.String("session_id", sessionID),
		zap.String("kind", string(req.Kind)),
		zap.String("job_id", resp.JobID))
	return resp, nil
}

// SendMediaFile checks the file against the kind's size and type rules,
// uploads it and sends the resulting URL.
func (s *messageService) SendMediaFile(ctx context.Context, sessionID string, file MediaFile) (*models.MessageResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, media.ErrUploaderMissing
	}

	contentType, err := media.ValidateFile(file.Kind, file.Data)
	if err != nil {
		return nil, apierrors.NewValidationError("file", err.Error())
	}

	url, err := s.uploader.Upload(ctx, file.Filename, contentType, file.Data)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", file.Filename, err)
	}

	s.logger.Debug("Media uploaded",
		zap.String("session_id", sessionID),
		zap.String("name", file.Filename),
		zap.String("content_type", contentType),
		zap.Int("size", len(file.Data)))

	return s.SendMedia(ctx, sessionID, models.SendMediaRequest{
		Kind:     file.Kind,
		To:       file.To,
		MediaURL: url,
		Caption:  file.Caption,
	})
}

func (s *messageService) SendBulk(ctx context.Context, sessionID string, req models.SendBulkRequest) ([]models.MessageResponse, error) {
	if err := validation.SessionID(sessionID); err != nil {
		return nil, err
	}
	req, err := validation.Bulk(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.SendBulk(ctx, sessionID, req)
	if err != nil {
		return nil, fmt.Errorf("send bulk: %w", err)
	}

	s.logger.Info("Bulk messages queued",
		zap.String("session_id", sessionID),
		zap.Int("recipients", len(req.Recipients)),
		zap.Int("delay_ms", req.DelayMs))
	return resp, nil
}

func (s *messageService) GetJobStatus(ctx context.Context, jobID string) (*models.MessageJob, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, apierrors.NewValidationError("job_id", "is required")
	}

	job, err := s.backend.GetJobStatus(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job status: %w", err)
	}
	return job, nil
}

// WatchJob polls the job until it is sent or failed.
func (s *messageService) WatchJob(ctx context.Context, jobID string) (*Watch[*models.MessageJob], error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, apierrors.NewValidationError("job_id", "is required")
	}

	return startWatch(ctx, s.logger.With(zap.String("job_id", jobID)), s.jobInterval, func(ctx context.Context) (*models.MessageJob, bool, error) {
		job, err := s.backend.GetJobStatus(ctx, jobID)
		if err != nil {
			return nil, apierrors.IsNotFound(err), err
		}
		return job, job.Done(), nil
	})
}
