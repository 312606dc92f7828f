package services

import (
	"fmt"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// ActivityService reads the append-only audit trail
type ActivityService struct {
	store storage.Storage
}

// NewActivityService creates an activity service
func NewActivityService(store storage.Storage) *ActivityService {
	return &ActivityService{store: store}
}

// GetRecent returns the user's newest activity entries, truncated to limit
// (the storage default when limit <= 0)
func (s *ActivityService) GetRecent(userID uint, limit int) ([]models.ActivityLog, error) {
	entries, err := s.store.GetActivityLogByUserID(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log: %w", err)
	}
	return entries, nil
}
