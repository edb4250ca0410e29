// Package export serializes the report log to an Excel spreadsheet.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
)

// SheetName is the worksheet the reports land on.
const SheetName = "Production Reports"

// ErrNoReports is returned when there is nothing to export; no file is
// written in that case.
var ErrNoReports = errors.New("no reports to export")

var headerRow = []any{
	"Date",
	"Team Member",
	"Task",
	"Time Spent (hrs)",
	"Units Completed",
	"Efficiency (%)",
	"Comments",
	"Timestamp",
}

// Exporter writes report logs to .xlsx files.
type Exporter struct {
	logger *log.Logger
}

// NewExporter creates a new Exporter instance.
func NewExporter(logger *log.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// DefaultFilename returns the spreadsheet filename for the given day.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("Production_Report_%s.xlsx", now.Format("2006-01-02"))
}

// WriteFile writes one row per report to an .xlsx file at path.
// Reports without an efficiency value get an explicit N/A marker.
func (e *Exporter) WriteFile(reports []model.ProductionReport, path string) error {
	ctx := context.Background()

	if len(reports) == 0 {
		return ErrNoReports
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, report := range reports {
		var efficiency any = "N/A"
		if report.Efficiency != nil {
			efficiency = *report.Efficiency
		}
		row := []any{
			report.Date.Format("01/02/2006"),
			report.TeamMember,
			report.Task,
			report.TimeSpent,
			report.UnitsCompleted,
			efficiency,
			report.Comments,
			report.Timestamp.Format("01/02/2006 15:04:05"),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		e.logger.Error(ctx, "Failed to save spreadsheet", log.Fields{"error": err, "path": path})
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	e.logger.Info(ctx, "Exported reports", log.Fields{"count": len(reports), "path": path})
	return nil
}
