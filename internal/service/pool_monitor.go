package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/scheduler"
)

// PoolPoller refreshes the listener pool snapshot.
type PoolPoller interface {
	PollPoolStatus(ctx context.Context) (*models.PoolStatus, error)
}

type poolMonitor struct {
	scheduler *scheduler.Scheduler
	poller    PoolPoller
	logger    *zap.Logger
}

// NewPoolMonitor refreshes the pool snapshot through poller every interval
// while started.
func NewPoolMonitor(interval time.Duration, poller PoolPoller, logger *zap.Logger) PoolMonitor {
	m := &poolMonitor{
		poller: poller,
		logger: logger,
	}

	m.scheduler = scheduler.NewScheduler(logger, interval, m.refresh)
	return m
}

func (m *poolMonitor) Start() error {
	return m.scheduler.Start(context.Background())
}

func (m *poolMonitor) Stop() error {
	return m.scheduler.Stop()
}

func (m *poolMonitor) IsRunning() bool {
	return m.scheduler.IsRunning()
}

func (m *poolMonitor) refresh(ctx context.Context) error {
	_, err := m.poller.PollPoolStatus(ctx)
	return err
}
