// Package session tracks the admin authentication state: a single
// fixed credential pair, a rolling inactivity timeout, and an absolute
// cap on how long a persisted login is honored across restarts.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/storage"
)

const (
	defaultInactivityTimeout = 30 * time.Minute
	defaultAbsoluteCap       = 2 * time.Hour
)

// ErrInvalidCredentials is returned by Login on a credential mismatch.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Config holds the session manager settings.
type Config struct {
	Username          string
	Password          string
	InactivityTimeout time.Duration
	AbsoluteCap       time.Duration
}

// SessionManager manages the authenticated/anonymous state. The
// persisted part is the auth flag and login instant; the inactivity
// timer lives only in memory and restarts fresh on every launch.
type SessionManager struct {
	cfg          Config
	storage      *storage.Storage
	eventManager *event.EventManager
	logger       *log.Logger

	mu            sync.Mutex
	authenticated bool
	inactivity    *time.Timer
}

// NewSessionManager creates a SessionManager. Zero timeouts in cfg
// fall back to the defaults (30 minutes inactivity, 2 hour cap).
func NewSessionManager(cfg Config, store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) (*SessionManager, error) {
	if store == nil {
		return nil, fmt.Errorf("storage not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	if cfg.InactivityTimeout <= 0 {
		cfg.InactivityTimeout = defaultInactivityTimeout
	}
	if cfg.AbsoluteCap <= 0 {
		cfg.AbsoluteCap = defaultAbsoluteCap
	}

	return &SessionManager{
		cfg:          cfg,
		storage:      store,
		eventManager: eventManager,
		logger:       logger,
	}, nil
}

// Restore re-derives the session state from the persisted auth flag
// and instant at application start. A persisted login older than the
// absolute cap is discarded; a fresh inactivity timer is armed either
// way the session survives. Returns whether the session is
// authenticated.
func (sm *SessionManager) Restore() bool {
	ctx := context.Background()
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ok, at := sm.storage.AuthGet()
	if !ok {
		return false
	}

	if time.Since(at) >= sm.cfg.AbsoluteCap {
		sm.logger.Info(ctx, "Discarding expired persisted session", log.Fields{"loginAt": at})
		if err := sm.storage.AuthClear(); err != nil {
			sm.logger.Error(ctx, "Failed to clear persisted session", log.Fields{"error": err})
		}
		return false
	}

	sm.authenticated = true
	sm.armTimerLocked()
	sm.logger.Info(ctx, "Restored persisted session", log.Fields{"loginAt": at})
	return true
}

// Login authenticates against the fixed configured credential pair
// (case-sensitive exact match). On success the auth flag and instant
// are persisted and the inactivity timer starts; on failure nothing is
// written.
func (sm *SessionManager) Login(username, password string) error {
	ctx := context.Background()
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(sm.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(sm.cfg.Password)) == 1
	if !userOK || !passOK {
		sm.logger.Warn(ctx, "Login failed", log.Fields{"username": username})
		return ErrInvalidCredentials
	}

	if err := sm.storage.AuthSave(time.Now()); err != nil {
		sm.logger.Error(ctx, "Failed to persist session", log.Fields{"error": err})
		return fmt.Errorf("failed to persist session: %w", err)
	}

	sm.authenticated = true
	sm.armTimerLocked()
	sm.eventManager.Publish(event.Event{Type: event.SessionStarted})
	sm.logger.Info(ctx, "Login successful", log.Fields{"username": username})
	return nil
}

// Logout transitions to anonymous, clearing the persisted session and
// cancelling the inactivity timer. Logging out while anonymous is a
// no-op.
func (sm *SessionManager) Logout() {
	ctx := context.Background()
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.authenticated {
		return
	}

	sm.authenticated = false
	sm.stopTimerLocked()
	if err := sm.storage.AuthClear(); err != nil {
		sm.logger.Error(ctx, "Failed to clear persisted session", log.Fields{"error": err})
	}
	sm.eventManager.Publish(event.Event{Type: event.SessionEnded})
	sm.logger.Info(ctx, "Logged out", nil)
}

// Touch restarts the inactivity timer. Called on every qualifying user
// interaction; has no effect while anonymous.
func (sm *SessionManager) Touch() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.authenticated {
		return
	}
	sm.armTimerLocked()
}

// IsAuthenticated reports the current session state.
func (sm *SessionManager) IsAuthenticated() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.authenticated
}

// Stop cancels any pending inactivity timer. Used at shutdown; the
// persisted session is left in place for the next start.
func (sm *SessionManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopTimerLocked()
}

// expire is the inactivity timer callback. It has no effect if the
// session already ended.
func (sm *SessionManager) expire() {
	ctx := context.Background()
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.authenticated {
		return
	}

	sm.authenticated = false
	sm.inactivity = nil
	if err := sm.storage.AuthClear(); err != nil {
		sm.logger.Error(ctx, "Failed to clear persisted session", log.Fields{"error": err})
	}
	sm.eventManager.Publish(event.Event{Type: event.SessionExpired})
	sm.logger.Info(ctx, "Session expired due to inactivity", nil)
}

// armTimerLocked cancels any pending timer before arming a new one so
// at most one expiry is ever outstanding. Callers must hold sm.mu.
func (sm *SessionManager) armTimerLocked() {
	sm.stopTimerLocked()
	sm.inactivity = time.AfterFunc(sm.cfg.InactivityTimeout, sm.expire)
}

func (sm *SessionManager) stopTimerLocked() {
	if sm.inactivity != nil {
		sm.inactivity.Stop()
		sm.inactivity = nil
	}
}
