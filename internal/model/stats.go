package model

// ActivityItem is an entry surfaced in the recent-activity feed,
// tagged with the collection it came from.
type ActivityItem struct {
	Entry
	Type string `json:"type"`
}

// DashboardStats aggregates the two entry collections for the
// dashboard view.
type DashboardStats struct {
	TotalEntries     int            `json:"totalEntries"`
	ActiveEntries    int            `json:"activeEntries"`
	CompletedEntries int            `json:"completedEntries"`
	OverdueEntries   int            `json:"overdueEntries"`
	RecentActivity   []ActivityItem `json:"recentActivity"`
}

// UserPerformance is one row of the per-user metrics table.
type UserPerformance struct {
	User       string `json:"user"`
	Completed  int    `json:"completed"`
	Pending    int    `json:"pending"`
	Efficiency string `json:"efficiency"`
}

// MonthlyTrend is one month of created/completed counts.
type MonthlyTrend struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Created   int    `json:"created"`
}

// PerformanceMetrics reports processing figures for the reporting view.
// CompletionRate is derived from the live collections; the remaining
// figures are illustrative.
type PerformanceMetrics struct {
	AverageProcessingTime string            `json:"averageProcessingTime"`
	CompletionRate        string            `json:"completionRate"`
	UserPerformance       []UserPerformance `json:"userPerformance"`
	MonthlyTrends         []MonthlyTrend    `json:"monthlyTrends"`
}
