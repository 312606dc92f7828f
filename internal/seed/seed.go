// Package seed loads a demo account with campaigns, a week of analytics and
// activity history so the dashboard renders with data on first start.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// Run populates the store with the demo dataset
func Run(store storage.Storage) error {
	userService := services.NewUserService(store)
	user, err := userService.CreateUser(&models.CreateUserRequest{
		Username: "john@company.com",
		Password: "password",
		Email:    "john@company.com",
		Name:     "John Anderson",
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
	})
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	logrus.Infof("Seeded user %s", user.Name)

	campaigns := []models.Campaign{
		{
			UserID: user.ID,
			Name:   "Sales Outreach Campaign",
			Type:   models.CampaignTypeConnection,
			Status: models.CampaignStatusActive,
			Settings: mustSettings(models.ConnectionSettings{
				DailyLimit: 25,
				TargetRole: "Software Engineer",
			}),
		},
		{
			UserID: user.ID,
			Name:   "Content Engagement",
			Type:   models.CampaignTypeEngagement,
			Status: models.CampaignStatusScheduled,
			Settings: mustSettings(models.EngagementSettings{
				LikesPerDay:    50,
				CommentsPerDay: 12,
			}),
		},
		{
			UserID: user.ID,
			Name:   "Follow-up Messages",
			Type:   models.CampaignTypeMessage,
			Status: models.CampaignStatusPaused,
			Settings: mustSettings(models.MessageSettings{
				MessageTemplate: "Thanks for connecting!",
			}),
		},
	}
	for i := range campaigns {
		if err := store.CreateCampaign(&campaigns[i]); err != nil {
			return fmt.Errorf("failed to seed campaign %q: %w", campaigns[i].Name, err)
		}
	}
	logrus.Infof("Seeded %d campaigns", len(campaigns))

	// A week of plausible daily counters, oldest day first.
	today := time.Now()
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(models.DateLayout)
		upsert := models.AnalyticsUpsert{
			UserID:              user.ID,
			Date:                date,
			ConnectionsSent:     intPtr(rand.Intn(20) + 30),
			ConnectionsAccepted: intPtr(rand.Intn(10) + 8),
			MessagesSent:        intPtr(rand.Intn(15) + 10),
			ContentShared:       intPtr(rand.Intn(3) + 1),
			LikesGiven:          intPtr(rand.Intn(30) + 40),
			CommentsGiven:       intPtr(rand.Intn(8) + 5),
		}
		if _, err := store.CreateOrUpdateAnalytics(upsert); err != nil {
			return fmt.Errorf("failed to seed analytics for %s: %w", date, err)
		}
	}
	logrus.Info("Seeded analytics for 7 days")

	activities := []models.ActivityLog{
		{
			UserID:      user.ID,
			Type:        "connection_accepted",
			Title:       "Connection request accepted",
			Description: "Sarah Johnson (Marketing Director at TechCorp) accepted your connection request",
			Status:      "success",
		},
		{
			UserID:      user.ID,
			Type:        "batch_connections",
			Title:       "Batch connection requests sent",
			Description: "25 connection requests sent to Software Engineers in San Francisco",
			Status:      "completed",
		},
		{
			UserID:      user.ID,
			Type:        "content_shared",
			Title:       "Content shared successfully",
			Description: `"5 Tips for Better LinkedIn Networking" post shared to your timeline`,
			Status:      "posted",
		},
		{
			UserID:      user.ID,
			Type:        "engagement_completed",
			Title:       "Engagement automation completed",
			Description: "Liked 50 posts and commented on 12 posts from your network",
			Status:      "engaged",
		},
	}
	for i := range activities {
		if err := store.CreateActivityLog(&activities[i]); err != nil {
			return fmt.Errorf("failed to seed activity entry %q: %w", activities[i].Title, err)
		}
	}
	logrus.Infof("Seeded %d activity entries", len(activities))

	return nil
}

func mustSettings(v interface{}) models.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return models.JSON(raw)
}

func intPtr(v int) *int {
	return &v
}
