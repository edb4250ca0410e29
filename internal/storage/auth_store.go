package storage

import (
	"context"
	"fmt"
	"time"
)

const authStatusAuthenticated = "authenticated"

// AuthGet reports whether an authenticated session is persisted and,
// if so, the instant it was established. Corrupt or incomplete values
// read as no session.
func (s *Storage) AuthGet() (bool, time.Time) {
	var status string
	if !s.readJSON(keyAuthStatus, &status) || status != authStatusAuthenticated {
		return false, time.Time{}
	}

	var millis int64
	if !s.readJSON(keyAuthTime, &millis) {
		return false, time.Time{}
	}
	return true, time.UnixMilli(millis)
}

// AuthSave persists the authenticated flag and login instant.
func (s *Storage) AuthSave(at time.Time) error {
	if err := s.writeJSON(keyAuthStatus, authStatusAuthenticated); err != nil {
		return err
	}
	if err := s.writeJSON(keyAuthTime, at.UnixMilli()); err != nil {
		return err
	}
	return nil
}

// AuthClear removes the persisted session, if any.
func (s *Storage) AuthClear() error {
	if err := s.store.Remove(keyAuthStatus); err != nil {
		return fmt.Errorf("failed to clear auth status: %w", err)
	}
	if err := s.store.Remove(keyAuthTime); err != nil {
		return fmt.Errorf("failed to clear auth time: %w", err)
	}
	s.logger.Debug(context.Background(), "Cleared persisted session", nil)
	return nil
}
