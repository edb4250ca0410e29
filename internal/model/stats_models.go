package model

// DashboardStats holds the metrics derived from the full report log.
// It is recomputed from scratch on every dashboard refresh.
type DashboardStats struct {
	TodayCount    int
	WeekCount     int
	TotalCount    int
	AvgEfficiency float64
	// HasEfficiency is false when no report carries an efficiency
	// value, in which case AvgEfficiency is meaningless.
	HasEfficiency bool
	RecentReports []ProductionReport
	TeamStats     []MemberStats
}

// MemberStats is the per-team-member rollup shown on the dashboard.
type MemberStats struct {
	Member        string
	ReportCount   int
	TotalHours    float64
	AvgEfficiency float64
	HasEfficiency bool
}
