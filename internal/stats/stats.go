// Package stats derives dashboard metrics from the report log. All
// functions are pure over a snapshot of the log and the current
// instant; nothing is cached between refreshes.
package stats

import (
	"math"
	"sort"
	"time"

	"prodreport/local-app/internal/model"
)

// recentLimit is how many reports the dashboard shows in its recent
// activity table.
const recentLimit = 10

// Dashboard computes the full set of dashboard metrics from the given
// report snapshot, evaluated at now (local time zone).
func Dashboard(reports []model.ProductionReport, now time.Time) model.DashboardStats {
	stats := model.DashboardStats{
		TotalCount:    len(reports),
		RecentReports: Recent(reports, recentLimit),
		TeamStats:     PerMember(reports),
	}

	weekStart := StartOfWeek(now)
	var effSum float64
	var effCount int

	for _, report := range reports {
		if sameDay(report.Date, now) {
			stats.TodayCount++
		}
		if !dateOnly(report.Date).Before(weekStart) {
			stats.WeekCount++
		}
		if report.Efficiency != nil {
			effSum += *report.Efficiency
			effCount++
		}
	}

	if effCount > 0 {
		stats.AvgEfficiency = round1(effSum / float64(effCount))
		stats.HasEfficiency = true
	}
	return stats
}

// Recent returns the last limit reports, most recent first.
func Recent(reports []model.ProductionReport, limit int) []model.ProductionReport {
	start := len(reports) - limit
	if start < 0 {
		start = 0
	}
	tail := reports[start:]

	recent := make([]model.ProductionReport, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		recent = append(recent, tail[i])
	}
	return recent
}

// PerMember groups the report log by team member and computes each
// member's report count, summed hours, and mean efficiency over the
// member's reports that carry one. Results are sorted by member name.
func PerMember(reports []model.ProductionReport) []model.MemberStats {
	type rollup struct {
		count    int
		hours    float64
		effSum   float64
		effCount int
	}

	groups := make(map[string]*rollup)
	for _, report := range reports {
		group, ok := groups[report.TeamMember]
		if !ok {
			group = &rollup{}
			groups[report.TeamMember] = group
		}
		group.count++
		group.hours += report.TimeSpent
		if report.Efficiency != nil {
			group.effSum += *report.Efficiency
			group.effCount++
		}
	}

	members := make([]string, 0, len(groups))
	for member := range groups {
		members = append(members, member)
	}
	sort.Strings(members)

	out := make([]model.MemberStats, 0, len(members))
	for _, member := range members {
		group := groups[member]
		stat := model.MemberStats{
			Member:      member,
			ReportCount: group.count,
			TotalHours:  group.hours,
		}
		if group.effCount > 0 {
			stat.AvgEfficiency = round1(group.effSum / float64(group.effCount))
			stat.HasEfficiency = true
		}
		out = append(out, stat)
	}
	return out
}

// StartOfWeek returns midnight of the most recent Sunday on or before
// t, in t's location. Weeks run Sunday through Saturday.
func StartOfWeek(t time.Time) time.Time {
	return dateOnly(t).AddDate(0, 0, -int(t.Weekday()))
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
