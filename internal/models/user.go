package models

// User represents a dashboard account
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(255);not null;unique;index"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);not null"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Avatar   string `json:"avatar,omitempty" gorm:"type:text"`

	// Relationships
	Campaigns   []Campaign    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Analytics   []Analytics   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	ActivityLog []ActivityLog `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// CreateUserRequest represents the request to create a new user account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" example:"john@company.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret-password"`
	Email    string `json:"email" binding:"required,email" example:"john@company.com"`
	Name     string `json:"name" binding:"required" example:"John Anderson"`
	Avatar   string `json:"avatar" example:"https://example.com/avatar.png"`
}
