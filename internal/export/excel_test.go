package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

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

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "Production_Report_2025-03-12.xlsx", DefaultFilename(now))
}

func TestWriteFileEmptyLogWritesNothing(t *testing.T) {
	exporter := NewExporter(newTestLogger(t))
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.ErrorIs(t, exporter.WriteFile(nil, path), ErrNoReports)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestWriteFile(t *testing.T) {
	exporter := NewExporter(newTestLogger(t))
	path := filepath.Join(t.TempDir(), "reports.xlsx")

	efficiency := 95.5
	reports := []model.ProductionReport{
		{
			ID:             "r1",
			Date:           time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			TeamMember:     "Mohsin",
			Task:           "Other (Specify in comments)",
			TimeSpent:      2,
			UnitsCompleted: 5,
			Comments:       "misc rework",
			Timestamp:      time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:             "r2",
			Date:           time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			TeamMember:     "Kaiser",
			Task:           "Cut Copper Pipes (Inlets & Exhaust)",
			TimeSpent:      4,
			UnitsCompleted: 12,
			Timestamp:      time.Date(2025, 3, 13, 16, 45, 30, 0, time.UTC),
			Efficiency:     &efficiency,
		},
	}

	require.NoError(t, exporter.WriteFile(reports, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SheetName}, f.GetSheetList())

	cell := func(ref string) string {
		value, err := f.GetCellValue(SheetName, ref)
		require.NoError(t, err)
		return value
	}

	require.Equal(t, "Date", cell("A1"))
	require.Equal(t, "Efficiency (%)", cell("F1"))
	require.Equal(t, "Timestamp", cell("H1"))

	require.Equal(t, "03/12/2025", cell("A2"))
	require.Equal(t, "Mohsin", cell("B2"))
	require.Equal(t, "N/A", cell("F2"))
	require.Equal(t, "misc rework", cell("G2"))
	require.Equal(t, "03/12/2025 09:30:00", cell("H2"))

	require.Equal(t, "Kaiser", cell("B3"))
	require.Equal(t, "95.5", cell("F3"))
}
