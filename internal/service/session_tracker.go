package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

// AuthWatch follows one session until it authenticates, fails, or is cancelled.
type AuthWatch struct {
	*Watch[*models.SessionStatus]
	SessionID   string
	Method      models.AuthMethod
	Interval    time.Duration
	maxAttempts int
	window      time.Duration
	started     time.Time
}

// Attempt is the current QR attempt, starting at 1. Always 1 for SMS watches.
func (w *AuthWatch) Attempt() int {
	if w.Method != models.AuthMethodQR || w.window <= 0 {
		return 1
	}
	n := 1 + int(time.Since(w.started)/w.window)
	if n > w.maxAttempts {
		n = w.maxAttempts
	}
	return n
}

// MaxAttempts is the QR attempt cap the watch was started with.
func (w *AuthWatch) MaxAttempts() int {
	return w.maxAttempts
}

// Status reports the watch for display. A watch without a poller reports as stopped.
func (w *AuthWatch) Status() AuthWatchStatus {
	st := AuthWatchStatus{
		SessionID:   w.SessionID,
		Method:      w.Method,
		IntervalMs:  w.Interval.Milliseconds(),
		Attempt:     w.Attempt(),
		MaxAttempts: w.maxAttempts,
	}
	if w.Watch == nil {
		return st
	}
	snap := w.Snapshot()
	st.Running = snap.Running
	st.Polls = snap.Polls
	st.Latest = snap.Latest
	if snap.LastErr != nil {
		st.LastError = snap.LastErr.Error()
	}
	if snap.Err != nil {
		st.Error = snap.Err.Error()
	}
	return st
}

func (w *AuthWatch) exhausted() bool {
	return w.Method == models.AuthMethodQR && w.window > 0 &&
		time.Since(w.started) >= time.Duration(w.maxAttempts)*w.window
}

type sessionTracker struct {
	backend       SessionBackend
	cache         *cache.Cache
	logger        *zap.Logger
	interval      time.Duration
	qrMaxAttempts int
	qrWindow      time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	watches map[string]*AuthWatch
	closed  bool
}

// NewSessionTracker creates a tracker polling at polling.session_interval_ms
// with the configured QR attempt cap.
func NewSessionTracker(cfg *config.Config, backend SessionBackend, c *cache.Cache, logger *zap.Logger) SessionTracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &sessionTracker{
		backend:       backend,
		cache:         c,
		logger:        logger,
		interval:      cfg.Polling.SessionInterval(),
		qrMaxAttempts: cfg.QR.MaxAttempts,
		qrWindow:      cfg.QR.AttemptWindow(),
		ctx:           ctx,
		cancel:        cancel,
		watches:       make(map[string]*AuthWatch),
	}
}

// Create starts a new SMS or QR authentication. Nothing is sent when the
// request does not validate.
func (t *sessionTracker) Create(ctx context.Context, req models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	if err := validation.CreateSession(&req); err != nil {
		return nil, err
	}

	resp, err := t.backend.CreateSession(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	t.cache.Invalidate(cache.KeySessions)

	t.logger.Info("Session created",
		zap.String("session_id", resp.Session.ID),
		zap.String("auth_method", string(req.AuthMethod)),
		zap.String("auth_state", string(resp.Session.AuthState)))
	return resp, nil
}

func (t *sessionTracker) VerifyCode(ctx context.Context, id, code string) (*models.Session, error) {
	if err := validation.SessionID(id); err != nil {
		return nil, err
	}
	if err := validation.VerifyCode(code); err != nil {
		return nil, err
	}

	session, err := t.backend.VerifyCode(ctx, id, code)
	if err != nil {
		return nil, fmt.Errorf("verify code: %w", err)
	}
	t.cache.Invalidate(cache.KeySessions, cache.SessionKey(id))

	t.logger.Info("Session code verified",
		zap.String("session_id", id),
		zap.String("auth_state", string(session.AuthState)),
		zap.Bool("is_active", session.IsActive))
	return session, nil
}

// Poll reads the session status from the backend, bypassing the cache, and
// stores the fresh snapshot for later Get calls.
func (t *sessionTracker) Poll(ctx context.Context, id string) (*models.SessionStatus, error) {
	if err := validation.SessionID(id); err != nil {
		return nil, err
	}

	status, err := t.backend.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("poll session: %w", err)
	}
	t.cache.Put(cache.SessionKey(id), status)
	return status, nil
}

func (t *sessionTracker) Get(ctx context.Context, id string) (*models.SessionStatus, error) {
	if err := validation.SessionID(id); err != nil {
		return nil, err
	}

	status, err := cache.Fetch(ctx, t.cache, cache.SessionKey(id), func(ctx context.Context) (*models.SessionStatus, error) {
		return t.backend.GetSession(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return status, nil
}

func (t *sessionTracker) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := cache.Fetch(ctx, t.cache, cache.KeySessions, t.backend.ListSessions)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes the session. Any watch on it is cancelled first. A session
// that is already gone is reported as deleted=false without an error.
func (t *sessionTracker) Delete(ctx context.Context, id string) (bool, error) {
	if err := validation.SessionID(id); err != nil {
		return false, err
	}

	t.CancelWatch(id)

	_, err := t.backend.DeleteSession(ctx, id)
	t.cache.InvalidateSession(id)
	if apierrors.IsNotFound(err) {
		t.logger.Info("Session already deleted", zap.String("session_id", id))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	t.logger.Info("Session deleted", zap.String("session_id", id))
	return true, nil
}

// WatchAuth polls the session until it is active or in a terminal state. Only
// one watch runs per session; a second call returns the running one. The
// watch ends when ctx is cancelled, when CancelWatch or Delete is called for
// the session, or when the tracker is closed.
func (t *sessionTracker) WatchAuth(ctx context.Context, id string, opts AuthWatchOptions) (*AuthWatch, error) {
	if err := validation.SessionID(id); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrTrackerClosed
	}
	if w, ok := t.watches[id]; ok && w.Running() {
		return w, nil
	}

	interval := max(opts.Interval, t.interval)

	aw := &AuthWatch{
		SessionID:   id,
		Method:      opts.Method,
		Interval:    interval,
		maxAttempts: t.qrMaxAttempts,
		window:      t.qrWindow,
		started:     time.Now(),
	}

	w, err := startWatch(t.ctx, t.logger.With(zap.String("session_id", id)), interval, t.authPoll(aw, opts.OnUpdate))
	if err != nil {
		return nil, err
	}
	aw.Watch = w
	t.watches[id] = aw

	if ctx != nil {
		stop := context.AfterFunc(ctx, w.Cancel)
		go func() {
			<-w.Done()
			stop()
		}()
	}
	go t.forget(aw)

	t.logger.Info("Watching session authentication",
		zap.String("session_id", id),
		zap.String("auth_method", string(opts.Method)),
		zap.Duration("interval", interval))
	return aw, nil
}

func (t *sessionTracker) authPoll(aw *AuthWatch, onUpdate func(*models.SessionStatus)) pollFunc[*models.SessionStatus] {
	return func(ctx context.Context) (*models.SessionStatus, bool, error) {
		status, err := t.backend.GetSession(ctx, aw.SessionID)
		if err != nil {
			// A deleted session or a purged login will not recover by polling.
			if apierrors.IsNotFound(err) || errors.Is(err, apierrors.ErrUnauthorized) {
				return nil, true, err
			}
			if aw.exhausted() {
				return nil, true, ErrQRAttemptsExhausted
			}
			return nil, false, err
		}

		if !status.Session.Consistent() {
			// Active wins: the watch still ends, the backend owns the state.
			t.logger.Warn("Backend reported an active session that is not authenticated",
				zap.String("session_id", aw.SessionID),
				zap.String("auth_state", string(status.Session.AuthState)))
		}

		t.cache.Put(cache.SessionKey(aw.SessionID), status)
		if onUpdate != nil {
			onUpdate(status)
		}

		if status.Done() {
			t.cache.Invalidate(cache.KeySessions)
			t.logger.Info("Session authentication finished",
				zap.String("session_id", aw.SessionID),
				zap.String("auth_state", string(status.Session.AuthState)),
				zap.Bool("is_active", status.Session.IsActive))
			return status, true, nil
		}

		if aw.exhausted() {
			failed := *status
			failed.Session.AuthState = models.AuthStateFailed
			failed.Status = models.StatusFailed
			failed.Message = ErrQRAttemptsExhausted.Error()
			t.logger.Warn("QR authentication attempts exhausted",
				zap.String("session_id", aw.SessionID),
				zap.Int("attempts", aw.maxAttempts))
			return &failed, true, ErrQRAttemptsExhausted
		}
		return status, false, nil
	}
}

func (t *sessionTracker) forget(aw *AuthWatch) {
	<-aw.Done()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watches[aw.SessionID] == aw {
		delete(t.watches, aw.SessionID)
	}
}

// Watch returns the watch registered for id, if any.
func (t *sessionTracker) Watch(id string) (*AuthWatch, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.watches[id]
	return w, ok
}

// CancelWatch stops the watch on id and reports whether one was running.
func (t *sessionTracker) CancelWatch(id string) bool {
	t.mu.Lock()
	w, ok := t.watches[id]
	delete(t.watches, id)
	t.mu.Unlock()

	if !ok {
		return false
	}
	w.Cancel()
	return true
}

// CancelAll cancels every watch without closing the tracker and returns how
// many it cancelled. It does not wait for in-flight polls, so it is safe to
// call from a poll's own call chain.
func (t *sessionTracker) CancelAll() int {
	t.mu.Lock()
	watches := t.watches
	t.watches = make(map[string]*AuthWatch)
	t.mu.Unlock()

	for _, w := range watches {
		w.Cancel()
	}
	return len(watches)
}

// ActiveWatches counts registered watches.
func (t *sessionTracker) ActiveWatches() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.watches)
}

// Close cancels every watch. Later WatchAuth calls fail with ErrTrackerClosed.
func (t *sessionTracker) Close() {
	t.mu.Lock()
	t.closed = true
	watches := make([]*AuthWatch, 0, len(t.watches))
	for _, w := range t.watches {
		watches = append(watches, w)
	}
	t.watches = make(map[string]*AuthWatch)
	t.mu.Unlock()

	t.cancel()
	for _, w := range watches {
		<-w.Done()
	}
}
