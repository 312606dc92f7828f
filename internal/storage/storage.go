package storage

import (
	"errors"

	"github.com/TheTestGit/LinkedInPro/internal/models"
)

// ErrNotFound is returned when a record does not exist. Absence is an
// expected outcome for callers, not a storage fault; handlers translate it
// into 404 while any other error becomes 500.
var ErrNotFound = errors.New("record not found")

// DefaultActivityLimit caps activity reads when the caller passes no limit
const DefaultActivityLimit = 10

// Storage is the persistence contract shared by the in-memory and
// postgres-backed implementations. Both honor the same upsert, ordering and
// partial-update semantics.
type Storage interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error

	// Campaigns. CreateCampaign assigns the id and sets CreatedAt ==
	// UpdatedAt; UpdateCampaign merges only the patch's non-nil fields and
	// bumps UpdatedAt.
	GetCampaignsByUserID(userID uint) ([]models.Campaign, error)
	GetCampaign(id uint) (*models.Campaign, error)
	CreateCampaign(campaign *models.Campaign) error
	UpdateCampaign(id uint, patch models.CampaignPatch) (*models.Campaign, error)

	// Tasks. GetTasksByUserID resolves the user's campaigns first and
	// returns the tasks under them.
	GetTask(id uint) (*models.Task, error)
	GetTasksByCampaignID(campaignID uint) ([]models.Task, error)
	GetTasksByUserID(userID uint) ([]models.Task, error)
	CreateTask(task *models.Task) error
	UpdateTask(id uint, patch models.TaskPatch) (*models.Task, error)

	// Analytics. GetAnalyticsByUserID returns rows ordered by date
	// descending. CreateOrUpdateAnalytics merges into the existing
	// (userID, date) row when one exists and inserts otherwise; two writes
	// for the same day never produce two rows.
	GetAnalyticsByUserID(userID uint) ([]models.Analytics, error)
	GetAnalyticsByDate(userID uint, date string) (*models.Analytics, error)
	CreateOrUpdateAnalytics(upsert models.AnalyticsUpsert) (*models.Analytics, error)

	// Activity log, newest first, truncated to limit (DefaultActivityLimit
	// when limit <= 0). Entries are append-only.
	GetActivityLogByUserID(userID uint, limit int) ([]models.ActivityLog, error)
	CreateActivityLog(entry *models.ActivityLog) error

	// Transaction runs fn against a storage view whose writes commit or
	// roll back as one unit, so a mutation and its audit entry cannot be
	// split by a failure in between.
	Transaction(fn func(Storage) error) error
}
