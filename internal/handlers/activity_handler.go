package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(store storage.Storage) *ActivityHandler {
	return &ActivityHandler{
		activityService: services.NewActivityService(store),
	}
}

// GetRecent godoc
// @Summary Get recent activity
// @Description Get the user's newest activity entries; an absent or unparsable limit falls back to the default
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {array} models.ActivityLog
// @Failure 500 {object} map[string]interface{}
// @Router /activity [get]
func (h *ActivityHandler) GetRecent(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	limit := storage.DefaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.activityService.GetRecent(userID, limit)
	if err != nil {
		logrus.Errorf("Failed to get activity log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
