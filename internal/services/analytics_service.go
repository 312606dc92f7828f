package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// Trailing-window lengths per period selector. An unrecognized period means
// no windowing: the full history is returned.
var periodWindows = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

const dashboardWindow = 7

// AnalyticsService derives presentation-ready metrics from the raw stored
// counters. Derived values are computed on every read and never stored.
type AnalyticsService struct {
	store storage.Storage
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(store storage.Storage) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// DashboardStats is the flat stats object behind the dashboard's header cards
type DashboardStats struct {
	ActiveAutomations int         `json:"activeAutomations" example:"3"`
	ConnectionsSent   int         `json:"connectionsSent" example:"247"`
	ResponseRate      string      `json:"responseRate" example:"34.0"`
	ContentShared     int         `json:"contentShared" example:"12"`
	ConnectionsToday  int         `json:"connectionsToday" example:"25"`
	WeeklyTrend       WeeklyTrend `json:"weeklyTrend"`
}

// WeeklyTrend compares the latest seven days against the seven before
type WeeklyTrend struct {
	Connections  string `json:"connections" example:"up"`
	ResponseRate string `json:"responseRate" example:"down"`
}

// PerformancePoint is one day of the performance chart series
type PerformancePoint struct {
	Date        string `json:"date" example:"2025-08-30"`
	Connections int    `json:"connections" example:"34"`
	Acceptances int    `json:"acceptances" example:"11"`
	Engagement  int    `json:"engagement" example:"52"`
}

// GetDashboardStats aggregates the user's campaigns and recent analytics into
// the dashboard stats object. Missing data yields zeros, never an error.
func (s *AnalyticsService) GetDashboardStats(userID uint) (*DashboardStats, error) {
	campaigns, err := s.store.GetCampaignsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	active := 0
	for _, campaign := range campaigns {
		if campaign.Status == models.CampaignStatusActive {
			active++
		}
	}

	rows, err := s.store.GetAnalyticsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	// Rows come back date-descending: the first window is the current week,
	// the next one the week before.
	week := window(rows, 0, dashboardWindow)
	prevWeek := window(rows, dashboardWindow, dashboardWindow)

	var sent, accepted, shared int
	for _, row := range week {
		sent += row.ConnectionsSent
		accepted += row.ConnectionsAccepted
		shared += row.ContentShared
	}
	var prevSent, prevAccepted int
	for _, row := range prevWeek {
		prevSent += row.ConnectionsSent
		prevAccepted += row.ConnectionsAccepted
	}

	today := time.Now().Format(models.DateLayout)
	connectionsToday := 0
	todayRow, err := s.store.GetAnalyticsByDate(userID, today)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get today's analytics: %w", err)
	}
	if todayRow != nil {
		connectionsToday = todayRow.ConnectionsSent
	}

	return &DashboardStats{
		ActiveAutomations: active,
		ConnectionsSent:   sent,
		ResponseRate:      formatRate(accepted, sent),
		ContentShared:     shared,
		ConnectionsToday:  connectionsToday,
		WeeklyTrend: WeeklyTrend{
			Connections:  trend(float64(sent), float64(prevSent)),
			ResponseRate: trend(rate(accepted, sent), rate(prevAccepted, prevSent)),
		},
	}, nil
}

// GetPerformanceSeries returns the chart series for the requested period,
// oldest day first. Shorter histories return fewer points; an unrecognized
// period returns the complete history.
func (s *AnalyticsService) GetPerformanceSeries(userID uint, period string) ([]PerformancePoint, error) {
	rows, err := s.store.GetAnalyticsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	if n, ok := periodWindows[period]; ok && len(rows) > n {
		rows = rows[:n]
	}

	// Reverse into chronological order for the chart.
	points := make([]PerformancePoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		points = append(points, PerformancePoint{
			Date:        row.Date,
			Connections: row.ConnectionsSent,
			Acceptances: row.ConnectionsAccepted,
			Engagement:  row.LikesGiven + row.CommentsGiven,
		})
	}
	return points, nil
}

// UpsertAnalytics merges a day's counters into the user's analytics
func (s *AnalyticsService) UpsertAnalytics(userID uint, upsert *models.AnalyticsUpsert) (*models.Analytics, error) {
	upsert.UserID = userID
	row, err := s.store.CreateOrUpdateAnalytics(*upsert)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert analytics: %w", err)
	}
	return row, nil
}

// window slices rows[offset : offset+size] without running past the end
func window(rows []models.Analytics, offset, size int) []models.Analytics {
	if offset >= len(rows) {
		return nil
	}
	end := offset + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func rate(accepted, sent int) float64 {
	if sent <= 0 {
		return 0
	}
	return float64(accepted) / float64(sent) * 100
}

// formatRate renders a percentage with one fraction digit; zero sent is a
// flat "0.0", never a division fault
func formatRate(accepted, sent int) string {
	return fmt.Sprintf("%.1f", rate(accepted, sent))
}

func trend(current, previous float64) string {
	switch {
	case current > previous:
		return "up"
	case current < previous:
		return "down"
	default:
		return "stable"
	}
}
