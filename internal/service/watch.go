package service

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/scheduler"
)

// pollFunc reads the watched entity once. done=true ends the watch; err with
// done=false is logged and the next tick tries again.
type pollFunc[T any] func(ctx context.Context) (value T, done bool, err error)

// Watch is a cancellable poller bound to whoever started it. It ends on
// Cancel, when its parent context is cancelled, or when a poll reports done.
type Watch[T any] struct {
	sched  *scheduler.Scheduler
	cancel context.CancelFunc
	done   chan struct{}
	poll   pollFunc[T]
	logger *zap.Logger

	mu       sync.RWMutex
	latest   T
	polls    int
	lastErr  error
	finalErr error
}

// WatchSnapshot is a point-in-time view of a watch.
type WatchSnapshot[T any] struct {
	Latest  T
	Polls   int
	Running bool
	LastErr error
	Err     error
}

func startWatch[T any](parent context.Context, logger *zap.Logger, interval time.Duration, poll pollFunc[T]) (*Watch[T], error) {
	ctx, cancel := context.WithCancel(parent)
	w := &Watch[T]{
		cancel: cancel,
		done:   make(chan struct{}),
		poll:   poll,
		logger: logger,
	}
	w.sched = scheduler.NewScheduler(logger, interval, w.tick)

	if err := w.sched.Start(ctx); err != nil {
		cancel()
		return nil, err
	}
	go func() {
		<-w.sched.Done()
		w.mu.Lock()
		if w.finalErr == nil && ctx.Err() != nil {
			w.finalErr = ErrWatchCancelled
		}
		w.mu.Unlock()
		cancel()
		close(w.done)
	}()
	return w, nil
}

func (w *Watch[T]) tick(ctx context.Context) error {
	value, done, err := w.poll(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.polls++
	if err != nil && !done {
		if ctx.Err() == nil {
			w.logger.Warn("Watch poll failed", zap.Int("poll", w.polls), zap.Error(err))
		}
		w.lastErr = err
		return nil
	}

	// A final error without a value keeps the last good one.
	if err == nil || !isZero(value) {
		w.latest = value
	}
	w.lastErr = nil
	if done {
		w.finalErr = err
		return scheduler.ErrStop
	}
	return nil
}

// Cancel stops the watch. It does not wait for an in-flight poll.
func (w *Watch[T]) Cancel() {
	w.cancel()
}

// Done is closed once the watch has ended and its final error is recorded.
func (w *Watch[T]) Done() <-chan struct{} {
	return w.done
}

// Running reports whether Done is still open.
func (w *Watch[T]) Running() bool {
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}

// Snapshot copies the watch state under its lock. Err is ErrWatchCancelled
// when the watch was cancelled rather than finished by a poll.
func (w *Watch[T]) Snapshot() WatchSnapshot[T] {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WatchSnapshot[T]{
		Latest:  w.latest,
		Polls:   w.polls,
		Running: w.Running(),
		LastErr: w.lastErr,
		Err:     w.finalErr,
	}
}

// Wait blocks until the watch ends or ctx is done and returns the last value.
func (w *Watch[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-w.Done():
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest, w.finalErr
}

// Err returns why the watch ended, or nil while it runs or after a clean finish.
func (w *Watch[T]) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.finalErr
}

func isZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
