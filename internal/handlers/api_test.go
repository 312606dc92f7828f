package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/router"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

func newTestServer(t *testing.T) (*gin.Engine, *storage.MemoryStorage, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStorage()
	user := &models.User{
		Username: "john@company.com",
		Password: "hash",
		Email:    "john@company.com",
		Name:     "John Anderson",
	}
	require.NoError(t, store.CreateUser(user))

	return router.SetupRouter(store, nil, user.ID), store, user
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestProfileNeverExposesPassword(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/user/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "John Anderson", body["name"])
	assert.NotContains(t, body, "password")
}

func TestCreateCampaignFlow(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns",
		`{"name":"Q1 Outreach","type":"connection","status":"active","settings":{"dailyLimit":25}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Q1 Outreach", created.Name)
	assert.Equal(t, models.CampaignStatusActive, created.Status)

	// The campaign shows up in the list.
	w = doJSON(t, r, http.MethodGet, "/api/campaigns", "")
	require.Equal(t, http.StatusOK, w.Code)
	var campaigns []models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &campaigns))
	require.Len(t, campaigns, 1)
	assert.Equal(t, created.ID, campaigns[0].ID)

	// And exactly one campaign_created entry landed in the activity feed.
	w = doJSON(t, r, http.MethodGet, "/api/activity", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityCampaignCreated, entries[0].Type)
}

func TestCreateCampaignRejectsBadPayload(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns", `{"type":"bogus"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid campaign data", body["error"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "type")
}

func TestCreateCampaignRejectsUnknownSettingsKey(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns",
		`{"name":"Q1 Outreach","type":"connection","settings":{"likesPerDay":50}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchCampaignStatus(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns",
		`{"name":"Q1 Outreach","type":"connection"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/campaigns/1", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.CampaignStatusPaused, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestPatchUnknownCampaignReturns404(t *testing.T) {
	r, store, user := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/campaigns/99", `{"status":"paused"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// A failed update leaves no activity entry behind.
	entries, err := store.GetActivityLogByUserID(user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDashboardStatsShape(t *testing.T) {
	r, store, user := newTestServer(t)

	sent, accepted := 50, 17
	_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
		UserID:              user.ID,
		Date:                time.Now().Format(models.DateLayout),
		ConnectionsSent:     &sent,
		ConnectionsAccepted: &accepted,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "34.0", body["responseRate"])
	assert.Equal(t, float64(50), body["connectionsSent"])
	assert.Equal(t, float64(50), body["connectionsToday"])
	assert.Contains(t, body, "weeklyTrend")
}

func TestPerformanceDefaultsToSevenDays(t *testing.T) {
	r, store, user := newTestServer(t)

	today := time.Now()
	for i := 0; i < 10; i++ {
		sent := 30
		_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
			UserID:          user.ID,
			Date:            today.AddDate(0, 0, -i).Format(models.DateLayout),
			ConnectionsSent: &sent,
		})
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/analytics/performance", "")
	require.Equal(t, http.StatusOK, w.Code)
	var points []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	assert.Len(t, points, 7)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/performance?period=30d", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	assert.Len(t, points, 10)
}

func TestUpsertAnalyticsEndpoint(t *testing.T) {
	r, store, user := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/analytics",
		`{"date":"2026-08-29","connectionsSent":25}`)
	require.Equal(t, http.StatusOK, w.Code)

	row, err := store.GetAnalyticsByDate(user.ID, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 25, row.ConnectionsSent)

	// Bad date format is a validation error, not a server fault.
	w = doJSON(t, r, http.MethodPost, "/api/analytics",
		`{"date":"29/08/2026","connectionsSent":25}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityLimitParsing(t *testing.T) {
	r, store, user := newTestServer(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, store.CreateActivityLog(&models.ActivityLog{
			UserID: user.ID,
			Type:   "content_shared",
			Title:  "Content shared successfully",
			Status: "posted",
		}))
	}

	w := doJSON(t, r, http.MethodGet, "/api/activity?limit=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)

	// Garbage limit falls back to the default.
	w = doJSON(t, r, http.MethodGet, "/api/activity?limit=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, storage.DefaultActivityLimit)
}

func TestTaskLifecycle(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns",
		`{"name":"Q1 Outreach","type":"connection"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/tasks",
		`{"campaignId":1,"type":"connection_request","targetProfile":"linkedin.com/in/someone"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, models.TaskStatusPending, task.Status)

	w = doJSON(t, r, http.MethodGet, "/api/campaigns/1/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 1)

	w = doJSON(t, r, http.MethodPatch, "/api/tasks/1", `{"status":"completed","result":"accepted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, "accepted", task.Result)

	// Tasks under an unknown campaign read as 404.
	w = doJSON(t, r, http.MethodPost, "/api/tasks",
		`{"campaignId":99,"type":"connection_request"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsExportStreamsWorkbook(t *testing.T) {
	r, store, user := newTestServer(t)

	sent := 30
	_, err := store.CreateOrUpdateAnalytics(models.AnalyticsUpsert{
		UserID:          user.ID,
		Date:            "2026-08-29",
		ConnectionsSent: &sent,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/analytics/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}
