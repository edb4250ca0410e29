// This file contains operations related to the task catalog.
package data

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/storage"
)

// TaskManager handles all task-catalog-related operations.
type TaskManager struct {
	storage      *storage.Storage
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewTaskManager creates a new TaskManager instance.
func NewTaskManager(store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) *TaskManager {
	return &TaskManager{storage: store, eventManager: eventManager, logger: logger}
}

// TaskList returns the current task catalog.
func (tm *TaskManager) TaskList() []string {
	return tm.storage.TaskGet()
}

// TaskAdd appends a new task label. Blank labels and exact duplicates
// are rejected; nothing is persisted on failure.
func (tm *TaskManager) TaskAdd(label string) error {
	ctx := context.Background()
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("task name cannot be empty")
	}

	tasks := tm.storage.TaskGet()
	if slices.Contains(tasks, label) {
		tm.logger.Warn(ctx, "Task already exists", log.Fields{"task": label})
		return fmt.Errorf("task '%s' already exists", label)
	}

	tasks = append(tasks, label)
	if err := tm.storage.TaskSave(tasks); err != nil {
		tm.logger.Error(ctx, "Failed to save tasks", log.Fields{"error": err})
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	tm.eventManager.Publish(event.Event{Type: event.CatalogChanged, Data: label})
	tm.logger.Info(ctx, "Task added", log.Fields{"task": label})
	return nil
}

// TaskRemove deletes all exact-match occurrences of label from the
// catalog and cascades to the standard-time table so no dangling entry
// persists. Removing an absent label is a no-op. Returns how many
// catalog entries were removed.
func (tm *TaskManager) TaskRemove(label string) (int, error) {
	ctx := context.Background()

	tasks := tm.storage.TaskGet()
	kept := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if task != label {
			kept = append(kept, task)
		}
	}

	removed := len(tasks) - len(kept)
	if removed == 0 {
		tm.logger.Debug(ctx, "Task not found, nothing removed", log.Fields{"task": label})
		return 0, nil
	}

	if err := tm.storage.TaskSave(kept); err != nil {
		tm.logger.Error(ctx, "Failed to save tasks", log.Fields{"error": err})
		return 0, fmt.Errorf("failed to save tasks: %w", err)
	}

	// Cascading delete of the task's standard time
	times := tm.storage.StandardTimeGet()
	if _, ok := times[label]; ok {
		delete(times, label)
		if err := tm.storage.StandardTimeSave(times); err != nil {
			tm.logger.Error(ctx, "Failed to save standard times", log.Fields{"error": err})
			return 0, fmt.Errorf("failed to save standard times: %w", err)
		}
	}

	tm.eventManager.Publish(event.Event{Type: event.TaskRemoved, Data: label})
	tm.logger.Info(ctx, "Task removed", log.Fields{"task": label, "removed": removed})
	return removed, nil
}
