// This file renders the dashboard view.
package cli

import (
	"fmt"
	"time"

	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/stats"
	"prodreport/local-app/internal/ui"
)

func (c *CLI) handleDashboard() {
	dashboard := stats.Dashboard(c.data.ReportManager.ReportAll(), time.Now())
	RenderDashboard(c.ui, dashboard)
}

// RenderDashboard prints the dashboard view. It is shared with the
// non-interactive dashboard command.
func RenderDashboard(out *ui.UI, dashboard model.DashboardStats) {
	avg := "--"
	if dashboard.HasEfficiency {
		avg = fmt.Sprintf("%.1f%%", dashboard.AvgEfficiency)
	}

	out.Println("Production Dashboard")
	out.Printf("  Today's Reports:   %d\n", dashboard.TodayCount)
	out.Printf("  This Week:         %d\n", dashboard.WeekCount)
	out.Printf("  Total Reports:     %d\n", dashboard.TotalCount)
	out.Printf("  Avg Efficiency:    %s\n", avg)

	out.Println("")
	out.Println("Recent Reports:")
	RenderReportTable(out, dashboard.RecentReports)

	out.Println("")
	out.Println("Team Performance:")
	renderTeamTable(out, dashboard.TeamStats)
}

func renderTeamTable(out *ui.UI, members []model.MemberStats) {
	if len(members) == 0 {
		out.Println("No team data yet")
		return
	}

	out.Printf("%-15s %8s %12s %12s\n", "Team Member", "Reports", "Total Hours", "Avg Eff")
	for _, member := range members {
		avg := "--"
		if member.HasEfficiency {
			avg = fmt.Sprintf("%.1f%%", member.AvgEfficiency)
		}
		out.Printf("%-15s %8d %12.1f %12s\n", member.Member, member.ReportCount, member.TotalHours, avg)
	}
}
