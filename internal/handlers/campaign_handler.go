package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(store storage.Storage, events *services.EventsService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: services.NewCampaignService(store, events),
	}
}

// GetMyCampaigns godoc
// @Summary Get the user's campaigns
// @Description Get all automation campaigns owned by the acting user
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [get]
func (h *CampaignHandler) GetMyCampaigns(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	campaigns, err := h.campaignService.GetCampaignsByUser(userID)
	if err != nil {
		logrus.Errorf("Failed to get campaigns: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Description Get a single campaign the acting user owns
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	campaignID, ok := pathID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetCampaignByID(userID, campaignID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		logrus.Errorf("Failed to get campaign %d: %v", campaignID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign godoc
// @Summary Create a new campaign
// @Description Create an automation campaign for the acting user and append a campaign_created activity entry
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid campaign data", err)
		return
	}
	if err := models.ValidateSettings(req.Type, req.Settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid campaign data",
			"details": gin.H{"settings": err.Error()},
		})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(userID, &req)
	if err != nil {
		logrus.Errorf("Failed to create campaign: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign godoc
// @Summary Update a campaign
// @Description Apply a partial update (typically the status) to a campaign the acting user owns and append a campaign_updated activity entry
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param request body models.CampaignPatch true "Fields to update"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [patch]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	campaignID, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.CampaignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid campaign data", err)
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(userID, campaignID, &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		if errors.Is(err, services.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid campaign data",
				"details": gin.H{"settings": err.Error()},
			})
			return
		}
		logrus.Errorf("Failed to update campaign %d: %v", campaignID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// pathID parses the :id path parameter; an unparsable id cannot name any
// stored record, so it reads as not found
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
