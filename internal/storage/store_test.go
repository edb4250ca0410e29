package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
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

func TestStoreRoundTrip(t *testing.T) {
	logger := newTestLogger(t)

	drivers := []struct {
		name   string
		driver Driver
	}{
		{"sqlite", SQLite},
		{"file", File},
		{"memory", Memory},
	}

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			store, err := NewStore(tc.driver, filepath.Join(t.TempDir(), "kv.db"), logger)
			require.NoError(t, err)
			defer store.Close()

			_, ok, err := store.Get("missing")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, store.Set("greeting", []byte(`"hello"`)))
			value, ok, err := store.Get("greeting")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, []byte(`"hello"`), value)

			// Overwrite
			require.NoError(t, store.Set("greeting", []byte(`"goodbye"`)))
			value, ok, err = store.Get("greeting")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, []byte(`"goodbye"`), value)

			require.NoError(t, store.Remove("greeting"))
			_, ok, err = store.Get("greeting")
			require.NoError(t, err)
			require.False(t, ok)

			// Removing an absent key is not an error
			require.NoError(t, store.Remove("greeting"))
		})
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	logger := newTestLogger(t)

	for _, driver := range []Driver{SQLite, File} {
		t.Run(string(driver), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kv.db")

			store, err := NewStore(driver, path, logger)
			require.NoError(t, err)
			require.NoError(t, store.Set("key", []byte(`42`)))
			require.NoError(t, store.Close())

			reopened, err := NewStore(driver, path, logger)
			require.NoError(t, err)
			defer reopened.Close()

			value, ok, err := reopened.Get("key")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, []byte(`42`), value)
		})
	}
}

func TestParseDriver(t *testing.T) {
	driver, err := ParseDriver("sqlite")
	require.NoError(t, err)
	require.Equal(t, SQLite, driver)

	_, err = ParseDriver("postgres")
	require.Error(t, err)
}
