package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

type DashboardHandler struct {
	analyticsService *services.AnalyticsService
}

func NewDashboardHandler(store storage.Storage) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: services.NewAnalyticsService(store),
	}
}

// GetStats godoc
// @Summary Get dashboard stats
// @Description Aggregate the user's campaigns and recent analytics into the dashboard header stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} map[string]interface{}
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	stats, err := h.analyticsService.GetDashboardStats(userID)
	if err != nil {
		logrus.Errorf("Failed to compute dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
