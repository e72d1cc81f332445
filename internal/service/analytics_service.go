package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"qmstracker/internal/model"
	"qmstracker/internal/repository"
)

const (
	dashboardLatency   = 1000 * time.Millisecond
	performanceLatency = 800 * time.Millisecond
)

const recentActivityPerCollection = 5

// AnalyticsService derives dashboard aggregates from the entry
// collections. It owns no durable state.
type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	PerformanceMetrics(ctx context.Context) (*model.PerformanceMetrics, error)
}

type analyticsService struct {
	repo          repository.EntryRepository
	latencyFactor float64
	now           func() time.Time
}

// NewAnalyticsService creates an analytics service over the entry repository.
func NewAnalyticsService(repo repository.EntryRepository, latencyFactor float64) AnalyticsService {
	return &analyticsService{repo: repo, latencyFactor: latencyFactor, now: time.Now}
}

func (s *analyticsService) simulateLatency(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.latencyFactor)
	if scaled <= 0 {
		return nil
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DashboardStats computes the entry counts and recent-activity feed.
// Status and overdue counts cover the Assignment collection; the total
// spans both.
func (s *analyticsService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	if err := s.simulateLatency(ctx, dashboardLatency); err != nil {
		return nil, err
	}

	assignment, err := s.repo.LoadCollection(ctx, model.SourceAssignment)
	if err != nil {
		return nil, err
	}
	sourcing, err := s.repo.LoadCollection(ctx, model.SourceSourcing)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalEntries: len(assignment) + len(sourcing),
	}
	now := s.now()
	for _, e := range assignment {
		if e.Status == model.EntryStatusCompleted {
			stats.CompletedEntries++
		} else {
			stats.ActiveEntries++
		}
		if e.DueDate == "" {
			continue
		}
		if due, err := parseDate(e.DueDate); err == nil && due.Before(now) {
			stats.OverdueEntries++
		}
	}

	stats.RecentActivity = recentActivity(assignment, sourcing)
	return stats, nil
}

// recentActivity takes the last 5 of each collection, tags them, merges
// and sorts descending by timeStamp with createdAt as fallback.
func recentActivity(assignment, sourcing []model.Entry) []model.ActivityItem {
	items := make([]model.ActivityItem, 0, 2*recentActivityPerCollection)
	for _, e := range lastN(assignment, recentActivityPerCollection) {
		items = append(items, model.ActivityItem{Entry: e, Type: "QMS"})
	}
	for _, e := range lastN(sourcing, recentActivityPerCollection) {
		items = append(items, model.ActivityItem{Entry: e, Type: "Sourcing"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return activityTime(items[i].Entry).After(activityTime(items[j].Entry))
	})
	return items
}

func lastN(entries []model.Entry, n int) []model.Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

func activityTime(e model.Entry) time.Time {
	if !e.TimeStamp.IsZero() {
		return e.TimeStamp
	}
	return e.CreatedAt
}

// PerformanceMetrics reports the completion rate derived from the live
// collections alongside illustrative per-user and monthly figures.
func (s *analyticsService) PerformanceMetrics(ctx context.Context) (*model.PerformanceMetrics, error) {
	if err := s.simulateLatency(ctx, performanceLatency); err != nil {
		return nil, err
	}

	assignment, err := s.repo.LoadCollection(ctx, model.SourceAssignment)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, e := range assignment {
		if e.Status == model.EntryStatusCompleted {
			completed++
		}
	}

	return &model.PerformanceMetrics{
		AverageProcessingTime: "2.5 days",
		CompletionRate:        completionRate(completed, len(assignment)),
		UserPerformance: []model.UserPerformance{
			{User: "MFakheem", Completed: 12, Pending: 3, Efficiency: "90%"},
			{User: "jdoe", Completed: 8, Pending: 5, Efficiency: "75%"},
			{User: "asmith", Completed: 15, Pending: 2, Efficiency: "95%"},
		},
		MonthlyTrends: []model.MonthlyTrend{
			{Month: "Jan", Completed: 45, Created: 52},
			{Month: "Feb", Completed: 38, Created: 41},
			{Month: "Mar", Completed: 52, Created: 58},
			{Month: "Apr", Completed: 61, Created: 64},
			{Month: "May", Completed: 48, Created: 53},
			{Month: "Jun", Completed: 55, Created: 59},
			{Month: "Jul", Completed: 42, Created: 47},
		},
	}, nil
}

// completionRate formats completed/total as a whole percentage.
func completionRate(completed, total int) string {
	if total == 0 {
		return "0%"
	}
	rate := decimal.NewFromInt(int64(completed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return rate.String() + "%"
}
