// Package session tracks per-user pending watermark requests: an uploaded
// image waits for watermark text until a cancellable timeout applies the
// default text instead. Exactly one delivery happens per upload, however
// the text and timeout paths race.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	apperrors "watermark-tg-bot/internal/errors"
	"watermark-tg-bot/internal/limiter"
	"watermark-tg-bot/internal/settings"
	"watermark-tg-bot/internal/watermark"
)

// Deliverer hands finished compositions back to the transport.
type Deliverer interface {
	// DeliverPhoto sends the encoded image with a caption to the chat.
	DeliverPhoto(chatID int64, imageJPEG []byte, caption string)
	// NotifyError reports a failure to the chat. The transport turns the
	// error into a user-facing message.
	NotifyError(chatID int64, err error)
}

// pendingSession holds an uploaded image awaiting watermark text. The
// session is consumed exactly once, by whichever of the text and timeout
// paths takes it first.
type pendingSession struct {
	imageBytes []byte
	chatID     int64
	timer      *time.Timer
}

// Manager owns the per-user pending sessions and the numeric-input
// overlay. At most one session exists per user; a new photo replaces the
// previous session without notice (last photo wins).
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*pendingSession
	inputs   map[int64]InputKind

	store       settings.Store
	engine      *watermark.Engine
	gate        *limiter.Gate
	deliver     Deliverer
	timeout     time.Duration
	defaultText string
	logger      *slog.Logger
}

func NewManager(
	store settings.Store,
	engine *watermark.Engine,
	gate *limiter.Gate,
	deliver Deliverer,
	timeout time.Duration,
	defaultText string,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		sessions:    make(map[int64]*pendingSession),
		inputs:      make(map[int64]InputKind),
		store:       store,
		engine:      engine,
		gate:        gate,
		deliver:     deliver,
		timeout:     timeout,
		defaultText: defaultText,
		logger:      logger,
	}
}

// HandlePhoto opens a pending session for the user and starts the timeout.
// An existing session is discarded first, its timer stopped.
func (m *Manager) HandlePhoto(userID, chatID int64, imageBytes []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old := m.sessions[userID]; old != nil {
		// Stop is advisory: a concurrently firing timer re-checks
		// session identity before acting.
		old.timer.Stop()
		m.logger.Info("pending session replaced", "user_id", userID)
	}

	sess := &pendingSession{imageBytes: imageBytes, chatID: chatID}
	sess.timer = time.AfterFunc(m.timeout, func() {
		m.expire(userID, sess)
	})
	m.sessions[userID] = sess
}

// HandleText consumes the user's pending session with the supplied text.
// Returns false when no session exists, meaning the text is ordinary chat.
func (m *Manager) HandleText(ctx context.Context, userID int64, text string) bool {
	sess := m.take(userID)
	if sess == nil {
		return false
	}
	sess.timer.Stop()

	m.finish(ctx, userID, sess, text, fmt.Sprintf("Watermark applied: %s", text))
	return true
}

// expire is the timer body. The session may already have been consumed by
// the text path or replaced by a newer photo; takeIf makes the check and
// the removal one atomic step so double delivery is impossible.
func (m *Manager) expire(userID int64, sess *pendingSession) {
	if !m.takeIf(userID, sess) {
		return
	}
	m.logger.Info("watermark text timed out, using default", "user_id", userID)

	caption := fmt.Sprintf("Time is up, applied the default watermark: %s", m.defaultText)
	m.finish(context.Background(), userID, sess, m.defaultText, caption)
}

// take removes and returns the user's session in a single step.
func (m *Manager) take(userID int64) *pendingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.sessions[userID]
	if sess != nil {
		delete(m.sessions, userID)
	}
	return sess
}

// takeIf removes the session only if it is still the given one.
func (m *Manager) takeIf(userID int64, sess *pendingSession) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[userID] != sess {
		return false
	}
	delete(m.sessions, userID)
	return true
}

// finish runs the composition for a consumed session and delivers the
// result. Failures are reported to the user; the session is already gone
// either way, so there is no retry.
func (m *Manager) finish(ctx context.Context, userID int64, sess *pendingSession, text, caption string) {
	if err := m.gate.Acquire(ctx); err != nil {
		m.logger.Warn("composition slot unavailable", "error", err, "user_id", userID)
		m.deliver.NotifyError(sess.chatID, apperrors.Wrap(err, apperrors.ErrCompositionFailed))
		return
	}
	defer m.gate.Release()

	ws, err := m.store.Get(userID)
	if err != nil {
		// A broken settings backend should not cost the user their
		// upload; render with defaults instead.
		m.logger.Error("failed to load settings, using defaults", "error", err, "user_id", userID)
		ws = watermark.DefaultSettings()
	}

	out, err := m.engine.Composite(sess.imageBytes, text, ws)
	if err != nil {
		m.logger.Error("composition failed", "error", err, "user_id", userID)
		if errors.Is(err, watermark.ErrDecode) {
			m.deliver.NotifyError(sess.chatID, apperrors.Wrap(err, apperrors.ErrNotAnImage))
		} else {
			m.deliver.NotifyError(sess.chatID, apperrors.Wrap(err, apperrors.ErrCompositionFailed))
		}
		return
	}

	m.logger.Info("watermark delivered",
		"user_id", userID,
		"input_size", len(sess.imageBytes),
		"output_size", len(out),
	)
	m.deliver.DeliverPhoto(sess.chatID, out, caption)
}

// ActiveSessions returns the number of users currently awaiting text.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Timeout returns the configured text-wait duration.
func (m *Manager) Timeout() time.Duration {
	return m.timeout
}

// DefaultText returns the watermark text used when the timeout fires.
func (m *Manager) DefaultText() string {
	return m.defaultText
}
