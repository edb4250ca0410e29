// This file contains the report submission and listing commands.
package cli

import (
	"fmt"

	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/stats"
	"prodreport/local-app/internal/ui"
)

const recentReportLimit = 10

func (c *CLI) handleReport(args []string) {
	if len(args) == 0 {
		c.ui.Error("Usage: report <add|recent>")
		return
	}

	switch args[0] {
	case "add":
		c.handleReportAdd()
	case "recent":
		c.handleReportRecent()
	default:
		c.ui.Error(fmt.Sprintf("Unknown report operation: %s", args[0]))
	}
}

// handleReportAdd walks the submission form field by field and hands
// the raw values to the report manager for validation.
func (c *CLI) handleReportAdd() {
	date, err := c.prompt("Date (yyyy-mm-dd, blank for today): ")
	if err != nil {
		return
	}

	c.ui.Println("Team members:")
	member, err := c.promptSelect("Team member (number or name): ", c.data.TeamManager.TeamList())
	if err != nil {
		return
	}

	c.ui.Println("Tasks:")
	task, err := c.promptSelect("Task (number or name): ", c.data.TaskManager.TaskList())
	if err != nil {
		return
	}

	timeSpent, err := c.prompt("Time spent (hours): ")
	if err != nil {
		return
	}
	units, err := c.prompt("Units completed: ")
	if err != nil {
		return
	}
	comments, err := c.prompt("Comments (optional): ")
	if err != nil {
		return
	}

	report, submitErr := c.data.ReportManager.ReportAdd(model.ReportInput{
		Date:           date,
		TeamMember:     member,
		Task:           task,
		TimeSpent:      timeSpent,
		UnitsCompleted: units,
		Comments:       comments,
	})
	if submitErr != nil {
		c.ui.Error(submitErr.Error())
		return
	}

	if report.Efficiency != nil {
		c.ui.Success(fmt.Sprintf("Report submitted successfully! Efficiency: %.1f%%", *report.Efficiency))
	} else {
		c.ui.Success("Report submitted successfully!")
	}
}

func (c *CLI) handleReportRecent() {
	recent := stats.Recent(c.data.ReportManager.ReportAll(), recentReportLimit)
	RenderReportTable(c.ui, recent)
}

// RenderReportTable prints reports most-recent-first, truncating long
// task labels like the dashboard does.
func RenderReportTable(out *ui.UI, reports []model.ProductionReport) {
	if len(reports) == 0 {
		out.Println("No reports yet")
		return
	}

	out.Printf("%-12s %-15s %-33s %8s %6s\n", "Date", "Team Member", "Task", "Hours", "Units")
	for _, report := range reports {
		out.Printf("%-12s %-15s %-33s %8.2f %6d\n",
			report.Date.Format("2006-01-02"),
			report.TeamMember,
			truncate(report.Task, 30),
			report.TimeSpent,
			report.UnitsCompleted,
		)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
