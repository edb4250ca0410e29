package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/storage"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	cfg := &model.Config{
		LogFolder:  t.TempDir(),
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		InfoLog:    "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelDebug)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger
}

func newTestSession(t *testing.T, cfg Config) (*SessionManager, *storage.Storage, *event.EventManager) {
	t.Helper()
	logger := newTestLogger(t)
	store, err := storage.NewStorage(storage.NewMemoryStore(), logger)
	require.NoError(t, err)

	events := event.NewEventManager(logger)
	sm, err := NewSessionManager(cfg, store, events, logger)
	require.NoError(t, err)
	t.Cleanup(sm.Stop)
	return sm, store, events
}

func testCredentials() Config {
	return Config{Username: "admin", Password: "basevac2025"}
}

func TestLogin(t *testing.T) {
	sm, store, _ := newTestSession(t, testCredentials())

	require.False(t, sm.IsAuthenticated())

	require.NoError(t, sm.Login("admin", "basevac2025"))
	require.True(t, sm.IsAuthenticated())

	ok, at := store.AuthGet()
	require.True(t, ok)
	require.WithinDuration(t, time.Now(), at, time.Minute)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	sm, store, _ := newTestSession(t, testCredentials())

	require.ErrorIs(t, sm.Login("admin", "wrong"), ErrInvalidCredentials)
	require.ErrorIs(t, sm.Login("Admin", "basevac2025"), ErrInvalidCredentials)
	require.ErrorIs(t, sm.Login("", ""), ErrInvalidCredentials)
	require.False(t, sm.IsAuthenticated())

	// Failed attempts persist nothing.
	ok, _ := store.AuthGet()
	require.False(t, ok)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	sm, store, _ := newTestSession(t, testCredentials())

	require.NoError(t, sm.Login("admin", "basevac2025"))
	sm.Logout()
	require.False(t, sm.IsAuthenticated())

	ok, _ := store.AuthGet()
	require.False(t, ok)

	// Logging out while anonymous is a no-op.
	sm.Logout()
	require.False(t, sm.IsAuthenticated())
}

func TestRestoreHonorsRecentSession(t *testing.T) {
	sm, store, _ := newTestSession(t, testCredentials())

	require.NoError(t, store.AuthSave(time.Now().Add(-time.Hour)))
	require.True(t, sm.Restore())
	require.True(t, sm.IsAuthenticated())
}

func TestRestoreDiscardsSessionPastAbsoluteCap(t *testing.T) {
	sm, store, _ := newTestSession(t, testCredentials())

	require.NoError(t, store.AuthSave(time.Now().Add(-3*time.Hour)))
	require.False(t, sm.Restore())
	require.False(t, sm.IsAuthenticated())

	// The stale persisted session is cleaned up.
	ok, _ := store.AuthGet()
	require.False(t, ok)
}

func TestRestoreWithoutPersistedSession(t *testing.T) {
	sm, _, _ := newTestSession(t, testCredentials())
	require.False(t, sm.Restore())
}

func TestInactivityExpiry(t *testing.T) {
	cfg := testCredentials()
	cfg.InactivityTimeout = 20 * time.Millisecond

	sm, store, events := newTestSession(t, cfg)

	expired := make(chan struct{}, 1)
	events.Subscribe(event.SessionExpired, func(event.Event) {
		expired <- struct{}{}
	})

	require.NoError(t, sm.Login("admin", "basevac2025"))

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("session did not expire")
	}

	require.False(t, sm.IsAuthenticated())
	ok, _ := store.AuthGet()
	require.False(t, ok)
}

func TestTouchRestartsInactivityTimer(t *testing.T) {
	cfg := testCredentials()
	cfg.InactivityTimeout = 60 * time.Millisecond

	sm, _, _ := newTestSession(t, cfg)
	require.NoError(t, sm.Login("admin", "basevac2025"))

	// Keep touching inside the timeout window; the session must not
	// expire while activity continues.
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		sm.Touch()
	}
	require.True(t, sm.IsAuthenticated())
}

func TestTouchWhileAnonymousIsNoOp(t *testing.T) {
	sm, _, _ := newTestSession(t, testCredentials())
	sm.Touch()
	require.False(t, sm.IsAuthenticated())
}
