package services

import (
	"fmt"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// TaskService manages the recorded automation actions under campaigns
type TaskService struct {
	store storage.Storage
}

// NewTaskService creates a task service
func NewTaskService(store storage.Storage) *TaskService {
	return &TaskService{store: store}
}

// GetTasksByCampaign retrieves the tasks of a campaign the user owns
func (s *TaskService) GetTasksByCampaign(userID, campaignID uint) ([]models.Task, error) {
	campaign, err := s.store.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, storage.ErrNotFound
	}
	tasks, err := s.store.GetTasksByCampaignID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetTasksByUser retrieves all tasks under the user's campaigns
func (s *TaskService) GetTasksByUser(userID uint) ([]models.Task, error) {
	tasks, err := s.store.GetTasksByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask records a task under a campaign the user owns
func (s *TaskService) CreateTask(userID uint, req *models.CreateTaskRequest) (*models.Task, error) {
	campaign, err := s.store.GetCampaign(req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, storage.ErrNotFound
	}

	task := &models.Task{
		CampaignID:    req.CampaignID,
		Type:          req.Type,
		Status:        req.Status,
		TargetProfile: req.TargetProfile,
		Content:       req.Content,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	if err := s.store.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask applies a partial update to a task under the user's campaigns
func (s *TaskService) UpdateTask(userID, taskID uint, patch *models.TaskPatch) (*models.Task, error) {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	campaign, err := s.store.GetCampaign(task.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return s.store.UpdateTask(taskID, *patch)
}
