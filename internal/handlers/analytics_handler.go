package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/services/report"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsHandler struct {
	store            storage.Storage
	analyticsService *services.AnalyticsService
	reportService    *report.Service
}

func NewAnalyticsHandler(store storage.Storage) *AnalyticsHandler {
	return &AnalyticsHandler{
		store:            store,
		analyticsService: services.NewAnalyticsService(store),
		reportService:    report.NewService(),
	}
}

// GetPerformance godoc
// @Summary Get performance series
// @Description Get the user's daily performance chart series for a trailing period, oldest day first
// @Tags analytics
// @Produce json
// @Param period query string false "Trailing window: 7d, 30d or 90d" default(7d)
// @Success 200 {array} services.PerformancePoint
// @Failure 500 {object} map[string]interface{}
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) GetPerformance(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	period := c.DefaultQuery("period", "7d")

	points, err := h.analyticsService.GetPerformanceSeries(userID, period)
	if err != nil {
		logrus.Errorf("Failed to get performance series: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// UpsertAnalytics godoc
// @Summary Record a day's analytics
// @Description Create or merge the analytics counters for a single date; only the counters present in the body change
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body models.AnalyticsUpsert true "Counters for one date"
// @Success 200 {object} models.Analytics
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /analytics [post]
func (h *AnalyticsHandler) UpsertAnalytics(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var upsert models.AnalyticsUpsert
	if err := c.ShouldBindJSON(&upsert); err != nil {
		badRequest(c, "Invalid analytics data", err)
		return
	}

	row, err := h.analyticsService.UpsertAnalytics(userID, &upsert)
	if err != nil {
		logrus.Errorf("Failed to upsert analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save analytics"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// ExportAnalytics godoc
// @Summary Export analytics history
// @Description Download the user's full analytics history as an Excel workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /analytics/export [get]
func (h *AnalyticsHandler) ExportAnalytics(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := h.store.GetUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.Errorf("Failed to get user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export analytics"})
		return
	}

	rows, err := h.store.GetAnalyticsByUserID(userID)
	if err != nil {
		logrus.Errorf("Failed to get analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export analytics"})
		return
	}

	buf, err := h.reportService.AnalyticsWorkbook(user, rows)
	if err != nil {
		logrus.Errorf("Failed to build analytics workbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export analytics"})
		return
	}

	filename := fmt.Sprintf("analytics-%s.xlsx", time.Now().Format(models.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
