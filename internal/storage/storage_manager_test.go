package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prodreport/local-app/internal/model"
)

func newTestStorage(t *testing.T) (*Storage, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	s, err := NewStorage(store, newTestLogger(t))
	require.NoError(t, err)
	return s, store
}

func TestStorageSeedsDefaultsOnFirstRun(t *testing.T) {
	s, _ := newTestStorage(t)

	require.Equal(t, model.DefaultTeamMembers(), s.TeamGet())
	require.Equal(t, model.DefaultTasks(), s.TaskGet())
	require.Equal(t, model.DefaultStandardTimes(), s.StandardTimeGet())
	require.Empty(t, s.ReportGet())
}

func TestStorageKeepsExistingDataOverDefaults(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(keyTeamMembers, []byte(`["Alice"]`)))

	s, err := NewStorage(store, newTestLogger(t))
	require.NoError(t, err)

	require.Equal(t, []string{"Alice"}, s.TeamGet())
}

func TestStorageCorruptValueFallsBackWithoutRewriting(t *testing.T) {
	s, store := newTestStorage(t)

	corrupt := []byte(`{not json`)
	require.NoError(t, store.Set(keyReports, corrupt))

	// Reads fall back to the empty log.
	require.Empty(t, s.ReportGet())

	// The corrupt value stays on disk untouched for inspection.
	raw, ok, err := store.Get(keyReports)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, corrupt, raw)
}

func TestStorageCollectionRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)

	require.NoError(t, s.TeamSave([]string{"Mohsin", "Kaiser"}))
	require.Equal(t, []string{"Mohsin", "Kaiser"}, s.TeamGet())

	require.NoError(t, s.TaskSave([]string{"Braze Manifolds"}))
	require.Equal(t, []string{"Braze Manifolds"}, s.TaskGet())

	require.NoError(t, s.StandardTimeSave(map[string]float64{"Braze Manifolds": 2.5}))
	require.Equal(t, map[string]float64{"Braze Manifolds": 2.5}, s.StandardTimeGet())

	reports := []model.ProductionReport{{ID: "r1", TeamMember: "Mohsin", Task: "Braze Manifolds", TimeSpent: 2, UnitsCompleted: 12}}
	require.NoError(t, s.ReportSave(reports))

	got := s.ReportGet()
	require.Len(t, got, 1)
	require.Equal(t, "r1", got[0].ID)
}

func TestStorageAuthRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)

	ok, _ := s.AuthGet()
	require.False(t, ok)

	at := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.AuthSave(at))

	ok, got := s.AuthGet()
	require.True(t, ok)
	require.Equal(t, at.UnixMilli(), got.UnixMilli())

	require.NoError(t, s.AuthClear())
	ok, _ = s.AuthGet()
	require.False(t, ok)
}

func TestStorageAuthRejectsUnknownStatus(t *testing.T) {
	s, store := newTestStorage(t)

	require.NoError(t, store.Set(keyAuthStatus, []byte(`"maybe"`)))
	require.NoError(t, store.Set(keyAuthTime, []byte(`1700000000000`)))

	ok, _ := s.AuthGet()
	require.False(t, ok)
}
