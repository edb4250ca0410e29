// This file contains operations related to the standard-time table.
package data

import (
	"context"
	"fmt"
	"math"
	"strings"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/storage"
)

// StandardTimeManager handles all standard-time-related operations.
type StandardTimeManager struct {
	storage      *storage.Storage
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewStandardTimeManager creates a new StandardTimeManager instance.
func NewStandardTimeManager(store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) *StandardTimeManager {
	return &StandardTimeManager{storage: store, eventManager: eventManager, logger: logger}
}

// StandardTimeList returns the current standard-time table.
func (sm *StandardTimeManager) StandardTimeList() map[string]float64 {
	return sm.storage.StandardTimeGet()
}

// StandardTimeSet upserts the standard hours (per 12 units) for a
// task. The task must be named and hours must be a finite positive
// number. Reports already logged keep their efficiency unchanged.
func (sm *StandardTimeManager) StandardTimeSet(task string, hours float64) error {
	ctx := context.Background()
	task = strings.TrimSpace(task)
	if task == "" {
		return fmt.Errorf("no task selected")
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return fmt.Errorf("standard time must be a positive number of hours")
	}

	times := sm.storage.StandardTimeGet()
	times[task] = hours
	if err := sm.storage.StandardTimeSave(times); err != nil {
		sm.logger.Error(ctx, "Failed to save standard times", log.Fields{"error": err})
		return fmt.Errorf("failed to save standard times: %w", err)
	}

	sm.eventManager.Publish(event.Event{Type: event.StandardTimeChanged, Data: task})
	sm.logger.Info(ctx, "Standard time set", log.Fields{"task": task, "hours": hours})
	return nil
}
