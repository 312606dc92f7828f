package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// CampaignService manages automation campaigns and the audit trail of their
// mutations. Every mutation and its activity entry are written in one
// storage transaction.
type CampaignService struct {
	store  storage.Storage
	events *EventsService
}

// NewCampaignService creates a campaign service. events may be nil when no
// broker is configured.
func NewCampaignService(store storage.Storage, events *EventsService) *CampaignService {
	return &CampaignService{store: store, events: events}
}

// GetCampaignsByUser retrieves all campaigns owned by the user
func (s *CampaignService) GetCampaignsByUser(userID uint) ([]models.Campaign, error) {
	campaigns, err := s.store.GetCampaignsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaignByID retrieves one campaign; the user must own it
func (s *CampaignService) GetCampaignByID(userID, campaignID uint) (*models.Campaign, error) {
	campaign, err := s.store.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return campaign, nil
}

// CreateCampaign persists a new campaign for the user and appends its
// campaign_created activity entry
func (s *CampaignService) CreateCampaign(userID uint, req *models.CreateCampaignRequest) (*models.Campaign, error) {
	campaign := &models.Campaign{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		Status:   req.Status,
		Settings: req.Settings,
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusActive
	}

	var entry *models.ActivityLog
	err := s.store.Transaction(func(tx storage.Storage) error {
		if err := tx.CreateCampaign(campaign); err != nil {
			return fmt.Errorf("failed to create campaign: %w", err)
		}
		entry = &models.ActivityLog{
			UserID:      userID,
			Type:        models.ActivityCampaignCreated,
			Title:       "New automation campaign created",
			Description: fmt.Sprintf("Created %q campaign", campaign.Name),
			Status:      "completed",
		}
		if err := tx.CreateActivityLog(entry); err != nil {
			return fmt.Errorf("failed to record campaign creation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(entry)
	return campaign, nil
}

// UpdateCampaign applies a partial update to a campaign the user owns and
// appends a campaign_updated activity entry. An unknown id returns
// storage.ErrNotFound with no side effects.
func (s *CampaignService) UpdateCampaign(userID, campaignID uint, patch *models.CampaignPatch) (*models.Campaign, error) {
	var (
		campaign *models.Campaign
		entry    *models.ActivityLog
	)
	err := s.store.Transaction(func(tx storage.Storage) error {
		existing, err := tx.GetCampaign(campaignID)
		if err != nil {
			return err
		}
		if existing.UserID != userID {
			return storage.ErrNotFound
		}

		// Settings must match the variant of the campaign type that will
		// be stored, which the patch itself may change.
		if patch.Settings != nil {
			campaignType := existing.Type
			if patch.Type != nil {
				campaignType = *patch.Type
			}
			if err := models.ValidateSettings(campaignType, *patch.Settings); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
			}
		}

		campaign, err = tx.UpdateCampaign(campaignID, *patch)
		if err != nil {
			return err
		}

		entry = updateActivityEntry(campaign, patch)
		if err := tx.CreateActivityLog(entry); err != nil {
			return fmt.Errorf("failed to record campaign update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(entry)
	return campaign, nil
}

// updateActivityEntry describes a campaign patch for the audit trail
func updateActivityEntry(campaign *models.Campaign, patch *models.CampaignPatch) *models.ActivityLog {
	entry := &models.ActivityLog{
		UserID: campaign.UserID,
		Type:   models.ActivityCampaignUpdated,
		Status: "completed",
	}
	if patch.Status != nil {
		entry.Title = fmt.Sprintf("Campaign %s", *patch.Status)
		entry.Description = fmt.Sprintf("%q campaign was %s", campaign.Name, *patch.Status)
	} else {
		entry.Title = "Campaign updated"
		entry.Description = fmt.Sprintf("%q campaign was updated", campaign.Name)
	}
	return entry
}

func (s *CampaignService) publish(entry *models.ActivityLog) {
	if err := s.events.PublishActivity(entry); err != nil {
		logrus.Warnf("Failed to publish activity event: %v", err)
	}
}
