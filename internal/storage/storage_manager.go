package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
)

// Logical keys for the persisted collections.
const (
	keyTeamMembers   = "team_members"
	keyTasks         = "tasks"
	keyStandardTimes = "standard_times"
	keyReports       = "reports"
	keyAuthStatus    = "auth_status"
	keyAuthTime      = "auth_time"
)

// Storage wraps a Store with the typed collection accessors. Reads
// never fail outward: absence or corruption falls back to compiled-in
// defaults, leaving whatever is persisted untouched.
type Storage struct {
	store  Store
	logger *log.Logger
}

// NewStorage creates a Storage instance over the given store and seeds
// the default reference data for any collection key that is wholly
// absent (first run).
func NewStorage(store Store, logger *log.Logger) (*Storage, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	s := &Storage{store: store, logger: logger}
	if err := s.seedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed default data: %w", err)
	}
	return s, nil
}

// Close closes the underlying store.
func (s *Storage) Close() error {
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// seedDefaults writes the built-in defaults for each collection key
// that does not exist yet. Existing values, valid or not, are kept.
func (s *Storage) seedDefaults() error {
	seeds := []struct {
		key   string
		value any
	}{
		{keyTeamMembers, model.DefaultTeamMembers()},
		{keyTasks, model.DefaultTasks()},
		{keyStandardTimes, model.DefaultStandardTimes()},
		{keyReports, []model.ProductionReport{}},
	}

	for _, seed := range seeds {
		_, ok, err := s.store.Get(seed.key)
		if err != nil {
			return fmt.Errorf("failed to check key '%s': %w", seed.key, err)
		}
		if ok {
			continue
		}
		if err := s.writeJSON(seed.key, seed.value); err != nil {
			return err
		}
		s.logger.Info(context.Background(), "Seeded default collection", log.Fields{"key": seed.key})
	}
	return nil
}

// readJSON unmarshals the value at key into out. It reports whether a
// usable value was found; corruption is logged and treated as absence.
func (s *Storage) readJSON(key string, out any) bool {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.logger.Error(context.Background(), "Failed to read collection", log.Fields{"key": key, "error": err})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn(context.Background(), "Corrupt collection value, using defaults", log.Fields{"key": key, "error": err})
		return false
	}
	return true
}

func (s *Storage) writeJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key '%s': %w", key, err)
	}
	if err := s.store.Set(key, raw); err != nil {
		return fmt.Errorf("failed to persist key '%s': %w", key, err)
	}
	return nil
}
