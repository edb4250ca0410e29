// This file contains operations related to the production report log.
package data

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/storage"
)

// standardBatchSize is the unit count a standard time refers to.
const standardBatchSize = 12

// ReportManager validates and records production report submissions.
type ReportManager struct {
	storage      *storage.Storage
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewReportManager creates a new ReportManager instance.
func NewReportManager(store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) *ReportManager {
	return &ReportManager{storage: store, eventManager: eventManager, logger: logger}
}

// ReportAdd validates the submitted form values, derives the
// efficiency where the task has a standard time, stamps the submission
// instant, and appends the report to the log. Team member and task are
// accepted as free text and are not checked against the catalogs.
func (rm *ReportManager) ReportAdd(input model.ReportInput) (model.ProductionReport, error) {
	ctx := context.Background()

	member := strings.TrimSpace(input.TeamMember)
	if member == "" {
		return model.ProductionReport{}, fmt.Errorf("team member is required")
	}
	task := strings.TrimSpace(input.Task)
	if task == "" {
		return model.ProductionReport{}, fmt.Errorf("task is required")
	}

	timeSpent, err := strconv.ParseFloat(strings.TrimSpace(input.TimeSpent), 64)
	if err != nil || math.IsNaN(timeSpent) || math.IsInf(timeSpent, 0) || timeSpent <= 0 {
		return model.ProductionReport{}, fmt.Errorf("time spent must be a positive number of hours")
	}

	units, err := strconv.Atoi(strings.TrimSpace(input.UnitsCompleted))
	if err != nil || units <= 0 {
		return model.ProductionReport{}, fmt.Errorf("units completed must be a positive whole number")
	}

	now := time.Now()
	date, err := parseReportDate(input.Date, now)
	if err != nil {
		return model.ProductionReport{}, err
	}

	report := model.ProductionReport{
		ID:             uuid.NewString(),
		Date:           date,
		TeamMember:     member,
		Task:           task,
		TimeSpent:      timeSpent,
		UnitsCompleted: units,
		Comments:       strings.TrimSpace(input.Comments),
		Timestamp:      now,
	}

	// Efficiency is derived once, against the standard-time table as
	// it stands at submission time.
	if standard, ok := rm.storage.StandardTimeGet()[task]; ok && timeSpent > 0 {
		expected := standard * float64(units) / standardBatchSize
		efficiency := round1(expected / timeSpent * 100)
		report.Efficiency = &efficiency
	}

	reports := rm.storage.ReportGet()
	reports = append(reports, report)
	if err := rm.storage.ReportSave(reports); err != nil {
		rm.logger.Error(ctx, "Failed to save reports", log.Fields{"error": err})
		return model.ProductionReport{}, fmt.Errorf("failed to save report: %w", err)
	}

	rm.eventManager.Publish(event.Event{Type: event.ReportAdded, Data: report})
	rm.logger.Info(ctx, "Report added", log.Fields{
		"member": member,
		"task":   task,
		"units":  units,
	})
	return report, nil
}

// ReportAll returns a snapshot of the report log in insertion order.
func (rm *ReportManager) ReportAll() []model.ProductionReport {
	return rm.storage.ReportGet()
}

// ReportClear empties the report log. Team members, tasks, and
// standard times are untouched.
func (rm *ReportManager) ReportClear() error {
	ctx := context.Background()

	if err := rm.storage.ReportSave([]model.ProductionReport{}); err != nil {
		rm.logger.Error(ctx, "Failed to clear reports", log.Fields{"error": err})
		return fmt.Errorf("failed to clear reports: %w", err)
	}

	rm.eventManager.Publish(event.Event{Type: event.ReportsCleared})
	rm.logger.Info(ctx, "Report log cleared", nil)
	return nil
}

// parseReportDate parses a yyyy-mm-dd form value, defaulting a blank
// value to today's local date. The date may be backdated.
func parseReportDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in yyyy-mm-dd format")
	}
	return date, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
