package models

import (
	"time"
)

// Campaign types accepted by the API
const (
	CampaignTypeConnection = "connection"
	CampaignTypeMessage    = "message"
	CampaignTypeEngagement = "engagement"
	CampaignTypeContent    = "content"
)

// Campaign statuses. Any status may replace any other; a transition graph is
// deliberately not enforced.
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusCompleted = "completed"
)

// Campaign represents a persisted automation intent that belongs to a user.
// It records what the user wants automated and its current status; nothing in
// this service executes it.
type Campaign struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null;index"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null;default:'active';index"`
	Settings  JSON      `json:"settings,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	User  User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Tasks []Task `json:"-" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "automation_campaigns"
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name     string `json:"name" binding:"required" example:"Q1 Outreach"`
	Type     string `json:"type" binding:"required,oneof=connection message engagement content" example:"connection"`
	Status   string `json:"status" binding:"omitempty,oneof=active paused scheduled completed" example:"active"`
	Settings JSON   `json:"settings" swaggertype:"object"`
}

// CampaignPatch represents a partial campaign update. Nil fields keep their
// stored value.
type CampaignPatch struct {
	Name     *string `json:"name" binding:"omitempty,min=1" example:"Q1 Outreach"`
	Type     *string `json:"type" binding:"omitempty,oneof=connection message engagement content" example:"connection"`
	Status   *string `json:"status" binding:"omitempty,oneof=active paused scheduled completed" example:"paused"`
	Settings *JSON   `json:"settings" swaggertype:"object"`
}
