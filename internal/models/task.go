package models

import (
	"time"
)

// Task statuses
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// Task represents a single automation action recorded under a campaign
type Task struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	CampaignID    uint       `json:"campaignId" gorm:"not null;index"`
	Type          string     `json:"type" gorm:"type:varchar(50);not null"` // connection_request, message, like, comment, post
	Status        string     `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	TargetProfile string     `json:"targetProfile,omitempty" gorm:"type:text"`
	Content       string     `json:"content,omitempty" gorm:"type:text"`
	Result        string     `json:"result,omitempty" gorm:"type:varchar(50)"` // accepted, declined, pending
	ExecutedAt    *time.Time `json:"executedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`

	// Relationships
	Campaign Campaign `json:"-" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Task model
func (Task) TableName() string {
	return "automation_tasks"
}

// CreateTaskRequest represents the request to record a new task
type CreateTaskRequest struct {
	CampaignID    uint   `json:"campaignId" binding:"required" example:"1"`
	Type          string `json:"type" binding:"required" example:"connection_request"`
	Status        string `json:"status" binding:"omitempty,oneof=pending completed failed" example:"pending"`
	TargetProfile string `json:"targetProfile" example:"linkedin.com/in/some-profile"`
	Content       string `json:"content" example:"Hi, great to connect!"`
}

// TaskPatch represents a partial task update. Nil fields keep their stored
// value.
type TaskPatch struct {
	Status     *string    `json:"status" binding:"omitempty,oneof=pending completed failed" example:"completed"`
	Result     *string    `json:"result" example:"accepted"`
	Content    *string    `json:"content"`
	ExecutedAt *time.Time `json:"executedAt"`
}
