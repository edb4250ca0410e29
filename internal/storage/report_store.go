package storage

import "prodreport/local-app/internal/model"

// ReportGet returns the persisted report log in insertion order. An
// absent or corrupt log reads as empty.
func (s *Storage) ReportGet() []model.ProductionReport {
	var reports []model.ProductionReport
	if !s.readJSON(keyReports, &reports) {
		return []model.ProductionReport{}
	}
	if reports == nil {
		reports = []model.ProductionReport{}
	}
	return reports
}

// ReportSave persists the full report log.
func (s *Storage) ReportSave(reports []model.ProductionReport) error {
	return s.writeJSON(keyReports, reports)
}
