package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/storage"
)

// The default standard time for this task is 4 hours per 12 units.
const copperPipesTask = "Cut Copper Pipes (Inlets & Exhaust)"

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

func newTestDataManager(t *testing.T) *DataManager {
	t.Helper()
	logger := newTestLogger(t)
	store, err := storage.NewStorage(storage.NewMemoryStore(), logger)
	require.NoError(t, err)

	dm, err := NewDataManager(store, event.NewEventManager(logger), logger)
	require.NoError(t, err)
	return dm
}

func TestReportAddComputesEfficiency(t *testing.T) {
	dm := newTestDataManager(t)

	// 12 units at the 4-hour standard, done in exactly 4 hours.
	report, err := dm.ReportManager.ReportAdd(model.ReportInput{
		Date:           "2025-03-12",
		TeamMember:     "Mohsin",
		Task:           copperPipesTask,
		TimeSpent:      "4",
		UnitsCompleted: "12",
	})
	require.NoError(t, err)
	require.NotNil(t, report.Efficiency)
	require.Equal(t, 100.0, *report.Efficiency)
	require.NotEmpty(t, report.ID)
	require.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), report.Date)

	// Twice as fast doubles the efficiency.
	report, err = dm.ReportManager.ReportAdd(model.ReportInput{
		TeamMember:     "Kaiser",
		Task:           copperPipesTask,
		TimeSpent:      "2",
		UnitsCompleted: "12",
	})
	require.NoError(t, err)
	require.NotNil(t, report.Efficiency)
	require.Equal(t, 200.0, *report.Efficiency)
}

func TestReportAddRoundsEfficiencyToOneDecimal(t *testing.T) {
	dm := newTestDataManager(t)

	// Expected 4h for 12 units, spent 3h: 133.333... rounds to 133.3.
	report, err := dm.ReportManager.ReportAdd(model.ReportInput{
		TeamMember:     "Mohsin",
		Task:           copperPipesTask,
		TimeSpent:      "3",
		UnitsCompleted: "12",
	})
	require.NoError(t, err)
	require.NotNil(t, report.Efficiency)
	require.Equal(t, 133.3, *report.Efficiency)
}

func TestReportAddWithoutStandardTimeHasNoEfficiency(t *testing.T) {
	dm := newTestDataManager(t)

	report, err := dm.ReportManager.ReportAdd(model.ReportInput{
		TeamMember:     "Mike",
		Task:           "Other (Specify in comments)",
		TimeSpent:      "2",
		UnitsCompleted: "5",
		Comments:       "misc rework",
	})
	require.NoError(t, err)
	require.Nil(t, report.Efficiency)
}

func TestReportAddDefaultsBlankDateToToday(t *testing.T) {
	dm := newTestDataManager(t)

	report, err := dm.ReportManager.ReportAdd(model.ReportInput{
		TeamMember:     "Mike",
		Task:           copperPipesTask,
		TimeSpent:      "1",
		UnitsCompleted: "3",
	})
	require.NoError(t, err)

	now := time.Now()
	require.Equal(t, now.Year(), report.Date.Year())
	require.Equal(t, now.YearDay(), report.Date.YearDay())
}

func TestReportAddRejectsBadInput(t *testing.T) {
	dm := newTestDataManager(t)

	valid := model.ReportInput{
		TeamMember:     "Mohsin",
		Task:           copperPipesTask,
		TimeSpent:      "2",
		UnitsCompleted: "6",
	}

	cases := []struct {
		name   string
		mutate func(*model.ReportInput)
	}{
		{"blank member", func(in *model.ReportInput) { in.TeamMember = "  " }},
		{"blank task", func(in *model.ReportInput) { in.Task = "" }},
		{"non-numeric time", func(in *model.ReportInput) { in.TimeSpent = "abc" }},
		{"zero time", func(in *model.ReportInput) { in.TimeSpent = "0" }},
		{"negative time", func(in *model.ReportInput) { in.TimeSpent = "-1.5" }},
		{"non-integer units", func(in *model.ReportInput) { in.UnitsCompleted = "2.5" }},
		{"zero units", func(in *model.ReportInput) { in.UnitsCompleted = "0" }},
		{"negative units", func(in *model.ReportInput) { in.UnitsCompleted = "-3" }},
		{"malformed date", func(in *model.ReportInput) { in.Date = "03/12/2025" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := dm.ReportManager.ReportAdd(input)
			require.Error(t, err)
		})
	}

	// Nothing was persisted by the rejected submissions.
	require.Empty(t, dm.ReportManager.ReportAll())
}

func TestReportAllPreservesInsertionOrder(t *testing.T) {
	dm := newTestDataManager(t)

	for _, member := range []string{"Mohsin", "Kaiser", "Mike"} {
		_, err := dm.ReportManager.ReportAdd(model.ReportInput{
			TeamMember:     member,
			Task:           copperPipesTask,
			TimeSpent:      "1",
			UnitsCompleted: "3",
		})
		require.NoError(t, err)
	}

	reports := dm.ReportManager.ReportAll()
	require.Len(t, reports, 3)
	require.Equal(t, "Mohsin", reports[0].TeamMember)
	require.Equal(t, "Kaiser", reports[1].TeamMember)
	require.Equal(t, "Mike", reports[2].TeamMember)
}

func TestReportClearEmptiesLogOnly(t *testing.T) {
	dm := newTestDataManager(t)

	_, err := dm.ReportManager.ReportAdd(model.ReportInput{
		TeamMember:     "Mohsin",
		Task:           copperPipesTask,
		TimeSpent:      "1",
		UnitsCompleted: "3",
	})
	require.NoError(t, err)
	require.Len(t, dm.ReportManager.ReportAll(), 1)

	require.NoError(t, dm.ReportManager.ReportClear())
	require.Empty(t, dm.ReportManager.ReportAll())

	// Reference data survives a clear.
	require.Equal(t, model.DefaultTeamMembers(), dm.TeamManager.TeamList())
	require.Equal(t, model.DefaultTasks(), dm.TaskManager.TaskList())
}
