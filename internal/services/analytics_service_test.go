package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

func newAnalyticsFixture(t *testing.T) (*AnalyticsService, storage.Storage, *models.User) {
	t.Helper()
	store := storage.NewMemoryStorage()
	user := &models.User{Username: "john@company.com", Password: "hash", Email: "john@company.com", Name: "John"}
	require.NoError(t, store.CreateUser(user))
	return NewAnalyticsService(store), store, user
}

// seedDays writes `days` analytics rows ending today, each with the given
// counters.
func seedDays(t *testing.T, store storage.Storage, userID uint, days, sent, accepted int) {
	t.Helper()
	today := time.Now()
	for i := 0; i < days; i++ {
		s, a := sent, accepted
		_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
			UserID:              userID,
			Date:                today.AddDate(0, 0, -i).Format(models.DateLayout),
			ConnectionsSent:     &s,
			ConnectionsAccepted: &a,
		})
		require.NoError(t, err)
	}
}

func TestDashboardStatsEmptyHistoryYieldsZeros(t *testing.T) {
	svc, _, user := newAnalyticsFixture(t)

	stats, err := svc.GetDashboardStats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.ActiveAutomations)
	assert.Equal(t, 0, stats.ConnectionsSent)
	assert.Equal(t, "0.0", stats.ResponseRate)
	assert.Equal(t, 0, stats.ConnectionsToday)
	assert.Equal(t, "stable", stats.WeeklyTrend.Connections)
	assert.Equal(t, "stable", stats.WeeklyTrend.ResponseRate)
}

func TestDashboardStatsResponseRateFormat(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)

	// One day with 17 acceptances of 50 sends reads as "34.0".
	sent, accepted := 50, 17
	_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
		UserID:              user.ID,
		Date:                time.Now().Format(models.DateLayout),
		ConnectionsSent:     &sent,
		ConnectionsAccepted: &accepted,
	})
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "34.0", stats.ResponseRate)
	assert.Equal(t, 50, stats.ConnectionsSent)
	assert.Equal(t, 50, stats.ConnectionsToday)
}

func TestDashboardStatsCountsActiveCampaigns(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)

	for _, status := range []string{
		models.CampaignStatusActive,
		models.CampaignStatusActive,
		models.CampaignStatusPaused,
		models.CampaignStatusCompleted,
	} {
		require.NoError(t, store.CreateCampaign(&models.Campaign{
			UserID: user.ID,
			Name:   fmt.Sprintf("Campaign %s", status),
			Type:   models.CampaignTypeConnection,
			Status: status,
		}))
	}

	stats, err := svc.GetDashboardStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveAutomations)
}

func TestDashboardStatsWeeklyTrend(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)

	today := time.Now()
	// Current week outsends the previous one but converts worse.
	for i := 0; i < 7; i++ {
		sent, accepted := 40, 8
		_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
			UserID:              user.ID,
			Date:                today.AddDate(0, 0, -i).Format(models.DateLayout),
			ConnectionsSent:     &sent,
			ConnectionsAccepted: &accepted,
		})
		require.NoError(t, err)
	}
	for i := 7; i < 14; i++ {
		sent, accepted := 20, 10
		_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
			UserID:              user.ID,
			Date:                today.AddDate(0, 0, -i).Format(models.DateLayout),
			ConnectionsSent:     &sent,
			ConnectionsAccepted: &accepted,
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetDashboardStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "up", stats.WeeklyTrend.Connections)
	assert.Equal(t, "down", stats.WeeklyTrend.ResponseRate)
	assert.Equal(t, 7*40, stats.ConnectionsSent)
	assert.Equal(t, "20.0", stats.ResponseRate)
}

func TestPerformanceSeriesWindowsAndOrder(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)
	seedDays(t, store, user.ID, 10, 30, 9)

	points, err := svc.GetPerformanceSeries(user.ID, "7d")
	require.NoError(t, err)
	require.Len(t, points, 7)
	// Chronological: every date strictly after the one before it.
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Date, points[i-1].Date)
	}
}

func TestPerformanceSeriesShortHistoryReturnsFewerPoints(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)
	seedDays(t, store, user.ID, 3, 30, 9)

	points, err := svc.GetPerformanceSeries(user.ID, "30d")
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestPerformanceSeriesUnknownPeriodReturnsFullHistory(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)
	seedDays(t, store, user.ID, 10, 30, 9)

	points, err := svc.GetPerformanceSeries(user.ID, "1y")
	require.NoError(t, err)
	assert.Len(t, points, 10)
}

func TestUpsertAnalyticsInjectsUserID(t *testing.T) {
	svc, store, user := newAnalyticsFixture(t)

	sent := 12
	row, err := svc.UpsertAnalytics(user.ID, &models.AnalyticsUpsert{
		Date:            "2026-08-29",
		ConnectionsSent: &sent,
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, row.UserID)

	stored, err := store.GetAnalyticsByDate(user.ID, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 12, stored.ConnectionsSent)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.0", formatRate(5, 0))
	assert.Equal(t, "34.0", formatRate(17, 50))
	assert.Equal(t, "33.3", formatRate(1, 3))
	assert.Equal(t, "100.0", formatRate(10, 10))
}
