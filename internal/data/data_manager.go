// Package data provides data management functionality for the
// production reporting application. This file wires the per-collection
// managers together.
package data

import (
	"context"
	"fmt"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/storage"
)

// DataManager composes the managers for all four persisted collections.
type DataManager struct {
	TeamManager         *TeamManager
	TaskManager         *TaskManager
	StandardTimeManager *StandardTimeManager
	ReportManager       *ReportManager
	logger              *log.Logger
}

// NewDataManager creates a new DataManager instance and all
// sub-managers.
func NewDataManager(store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) (*DataManager, error) {
	ctx := context.Background()

	if store == nil {
		return nil, fmt.Errorf("storage not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	dm := &DataManager{
		TeamManager:         NewTeamManager(store, eventManager, logger),
		TaskManager:         NewTaskManager(store, eventManager, logger),
		StandardTimeManager: NewStandardTimeManager(store, eventManager, logger),
		ReportManager:       NewReportManager(store, eventManager, logger),
		logger:              logger,
	}

	logger.Info(ctx, "DataManager created successfully", nil)
	return dm, nil
}
