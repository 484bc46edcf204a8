package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs one task immediately and then once per interval. At most one
// run is in flight; ticks that fire during a run are dropped.
type Scheduler struct {
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	doneCh := make(chan struct{})
	close(doneCh)

	return &Scheduler{
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   doneCh,
	}
}

// Start begins the loop. Cancelling ctx ends it as well as Stop does.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Debug("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the loop and waits for an in-flight run to return.
// It must not be called from inside the task.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.isRunning = false
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.logger.Debug("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Done is closed when the loop started by the last Start has exited.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doneCh
}

func (s *Scheduler) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		if s.doneCh == doneCh {
			s.isRunning = false
		}
		s.mu.Unlock()
	}()

	if s.executeTask(ctx) {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Scheduler context canceled")
			return
		case <-stopCh:
			s.logger.Debug("Scheduler stop signal received")
			return
		case <-ticker.C:
			select {
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			default:
			}
			if s.executeTask(ctx) {
				return
			}
			// drop a tick that fired while the task was running
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

// executeTask runs the task once and reports whether the loop should end.
func (s *Scheduler) executeTask(ctx context.Context) bool {
	taskCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	err := s.taskFunc(taskCtx)
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrStop):
		s.logger.Debug("Task requested stop")
		return true
	case ctx.Err() != nil:
		return true
	default:
		s.logger.Warn("Task execution failed", zap.Error(err))
		return false
	}
}
