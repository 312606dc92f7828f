package models

// DateLayout is the calendar-day format used for analytics rows
const DateLayout = "2006-01-02"

// Analytics holds one day's aggregated automation counters for a user. There
// is at most one row per (user, date); writes for an existing day merge into
// it.
type Analytics struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	UserID              uint   `json:"userId" gorm:"not null;uniqueIndex:idx_analytics_user_date"`
	Date                string `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_analytics_user_date"` // YYYY-MM-DD
	ConnectionsSent     int    `json:"connectionsSent" gorm:"not null;default:0"`
	ConnectionsAccepted int    `json:"connectionsAccepted" gorm:"not null;default:0"`
	MessagesSent        int    `json:"messagesSent" gorm:"not null;default:0"`
	ContentShared       int    `json:"contentShared" gorm:"not null;default:0"`
	LikesGiven          int    `json:"likesGiven" gorm:"not null;default:0"`
	CommentsGiven       int    `json:"commentsGiven" gorm:"not null;default:0"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Analytics model
func (Analytics) TableName() string {
	return "analytics"
}

// AnalyticsUpsert carries a day's counters for createOrUpdate. Nil counters
// keep the stored value when the row already exists and default to zero when
// it does not. UserID is injected server-side, never bound from the request.
type AnalyticsUpsert struct {
	UserID              uint   `json:"-"`
	Date                string `json:"date" binding:"required,datetime=2006-01-02" example:"2025-08-30"`
	ConnectionsSent     *int   `json:"connectionsSent" binding:"omitempty,min=0" example:"25"`
	ConnectionsAccepted *int   `json:"connectionsAccepted" binding:"omitempty,min=0" example:"9"`
	MessagesSent        *int   `json:"messagesSent" binding:"omitempty,min=0" example:"12"`
	ContentShared       *int   `json:"contentShared" binding:"omitempty,min=0" example:"2"`
	LikesGiven          *int   `json:"likesGiven" binding:"omitempty,min=0" example:"40"`
	CommentsGiven       *int   `json:"commentsGiven" binding:"omitempty,min=0" example:"6"`
}
