package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TheTestGit/LinkedInPro/internal/models"
)

// GormStorage is the relational Storage backed by postgres through gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage wraps an initialized gorm connection
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// mapNotFound translates gorm's record-not-found into the storage sentinel
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GetUser retrieves a user by id
func (s *GormStorage) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username
func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

// CreateUser creates a user and assigns its id
func (s *GormStorage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// GetCampaignsByUserID retrieves all campaigns owned by a user
func (s *GormStorage) GetCampaignsByUserID(userID uint) ([]models.Campaign, error) {
	campaigns := make([]models.Campaign, 0)
	err := s.db.Where("user_id = ?", userID).Find(&campaigns).Error
	return campaigns, err
}

// GetCampaign retrieves a campaign by id
func (s *GormStorage) GetCampaign(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &campaign, nil
}

// CreateCampaign creates a campaign, assigning its id and timestamps
func (s *GormStorage) CreateCampaign(campaign *models.Campaign) error {
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusActive
	}
	return s.db.Create(campaign).Error
}

// UpdateCampaign merges the patch's non-nil fields into the stored campaign.
// Omitted fields are never nulled out.
func (s *GormStorage) UpdateCampaign(id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Settings != nil {
		updates["settings"] = *patch.Settings
	}
	if len(updates) > 0 {
		if err := s.db.Model(&campaign).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&campaign, "id = ?", id).Error; err != nil {
			return nil, mapNotFound(err)
		}
	}
	return &campaign, nil
}

// GetTask retrieves a task by id
func (s *GormStorage) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &task, nil
}

// GetTasksByCampaignID retrieves all tasks under a campaign
func (s *GormStorage) GetTasksByCampaignID(campaignID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	err := s.db.Where("campaign_id = ?", campaignID).Find(&tasks).Error
	return tasks, err
}

// GetTasksByUserID retrieves all tasks under the user's campaigns
func (s *GormStorage) GetTasksByUserID(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	campaignIDs := s.db.Model(&models.Campaign{}).Select("id").Where("user_id = ?", userID)
	err := s.db.Where("campaign_id IN (?)", campaignIDs).Find(&tasks).Error
	return tasks, err
}

// CreateTask creates a task and assigns its id
func (s *GormStorage) CreateTask(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	return s.db.Create(task).Error
}

// UpdateTask merges the patch's non-nil fields into the stored task
func (s *GormStorage) UpdateTask(id uint, patch models.TaskPatch) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Result != nil {
		updates["result"] = *patch.Result
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.ExecutedAt != nil {
		updates["executed_at"] = *patch.ExecutedAt
	}
	if len(updates) > 0 {
		if err := s.db.Model(&task).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&task, "id = ?", id).Error; err != nil {
			return nil, mapNotFound(err)
		}
	}
	return &task, nil
}

// GetAnalyticsByUserID retrieves a user's analytics ordered by date descending
func (s *GormStorage) GetAnalyticsByUserID(userID uint) ([]models.Analytics, error) {
	rows := make([]models.Analytics, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

// GetAnalyticsByDate retrieves the analytics row for one calendar day
func (s *GormStorage) GetAnalyticsByDate(userID uint, date string) (*models.Analytics, error) {
	var row models.Analytics
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &row, nil
}

// CreateOrUpdateAnalytics upserts the (userID, date) row inside a transaction
// so a concurrent write for the same day cannot produce a duplicate.
func (s *GormStorage) CreateOrUpdateAnalytics(upsert models.AnalyticsUpsert) (*models.Analytics, error) {
	var row models.Analytics
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", upsert.UserID, upsert.Date).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.Analytics{UserID: upsert.UserID, Date: upsert.Date}
			mergeAnalytics(&row, upsert)
			return tx.Create(&row).Error
		}
		mergeAnalytics(&row, upsert)
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetActivityLogByUserID retrieves a user's newest activity entries
func (s *GormStorage) GetActivityLogByUserID(userID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	entries := make([]models.ActivityLog, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// CreateActivityLog appends an activity entry and assigns its id
func (s *GormStorage) CreateActivityLog(entry *models.ActivityLog) error {
	return s.db.Create(entry).Error
}

// Transaction runs fn inside a database transaction
func (s *GormStorage) Transaction(fn func(Storage) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStorage{db: tx})
	})
}
