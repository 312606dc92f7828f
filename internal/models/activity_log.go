package models

import (
	"time"
)

// Activity entry types written by this service
const (
	ActivityCampaignCreated = "campaign_created"
	ActivityCampaignUpdated = "campaign_updated"
)

// ActivityLog represents an immutable audit entry describing a past campaign
// event. Entries are append-only and never mutated after creation.
type ActivityLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Type        string    `json:"type" gorm:"type:varchar(50);not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Status      string    `json:"status" gorm:"type:varchar(50);not null"` // success, completed, posted, engaged
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_log"
}
