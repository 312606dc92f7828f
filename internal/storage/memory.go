package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/TheTestGit/LinkedInPro/internal/models"
)

// MemoryStorage is a map-backed Storage. It needs no external service, keeps
// per-entity monotonic id counters, and is fully owned by the instance the
// constructor returns, so parallel tests can each build their own.
type MemoryStorage struct {
	mu   sync.Mutex
	data *memData
}

type memData struct {
	users        map[uint]models.User
	campaigns    map[uint]models.Campaign
	tasks        map[uint]models.Task
	analytics    map[string]models.Analytics // key: userID-date
	activityLogs map[uint]models.ActivityLog

	nextUserID      uint
	nextCampaignID  uint
	nextTaskID      uint
	nextAnalyticsID uint
	nextActivityID  uint
}

// NewMemoryStorage creates an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: &memData{
			users:           make(map[uint]models.User),
			campaigns:       make(map[uint]models.Campaign),
			tasks:           make(map[uint]models.Task),
			analytics:       make(map[string]models.Analytics),
			activityLogs:    make(map[uint]models.ActivityLog),
			nextUserID:      1,
			nextCampaignID:  1,
			nextTaskID:      1,
			nextAnalyticsID: 1,
			nextActivityID:  1,
		},
	}
}

func analyticsKey(userID uint, date string) string {
	return fmt.Sprintf("%d-%s", userID, date)
}

// GetUser retrieves a user by id
func (s *MemoryStorage) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getUser(id)
}

// GetUserByUsername retrieves a user by its unique username
func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getUserByUsername(username)
}

// CreateUser creates a user and assigns its id
func (s *MemoryStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createUser(user)
}

// GetCampaignsByUserID retrieves all campaigns owned by a user
func (s *MemoryStorage) GetCampaignsByUserID(userID uint) ([]models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getCampaignsByUserID(userID)
}

// GetCampaign retrieves a campaign by id
func (s *MemoryStorage) GetCampaign(id uint) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getCampaign(id)
}

// CreateCampaign creates a campaign, assigning its id and timestamps
func (s *MemoryStorage) CreateCampaign(campaign *models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createCampaign(campaign)
}

// UpdateCampaign merges the patch's non-nil fields into the stored campaign
func (s *MemoryStorage) UpdateCampaign(id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.updateCampaign(id, patch)
}

// GetTask retrieves a task by id
func (s *MemoryStorage) GetTask(id uint) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getTask(id)
}

// GetTasksByCampaignID retrieves all tasks under a campaign
func (s *MemoryStorage) GetTasksByCampaignID(campaignID uint) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getTasksByCampaignID(campaignID)
}

// GetTasksByUserID retrieves all tasks under the user's campaigns
func (s *MemoryStorage) GetTasksByUserID(userID uint) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getTasksByUserID(userID)
}

// CreateTask creates a task and assigns its id
func (s *MemoryStorage) CreateTask(task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createTask(task)
}

// UpdateTask merges the patch's non-nil fields into the stored task
func (s *MemoryStorage) UpdateTask(id uint, patch models.TaskPatch) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.updateTask(id, patch)
}

// GetAnalyticsByUserID retrieves a user's analytics ordered by date descending
func (s *MemoryStorage) GetAnalyticsByUserID(userID uint) ([]models.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getAnalyticsByUserID(userID)
}

// GetAnalyticsByDate retrieves the analytics row for one calendar day
func (s *MemoryStorage) GetAnalyticsByDate(userID uint, date string) (*models.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getAnalyticsByDate(userID, date)
}

// CreateOrUpdateAnalytics upserts the (userID, date) row
func (s *MemoryStorage) CreateOrUpdateAnalytics(upsert models.AnalyticsUpsert) (*models.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createOrUpdateAnalytics(upsert)
}

// GetActivityLogByUserID retrieves a user's newest activity entries
func (s *MemoryStorage) GetActivityLogByUserID(userID uint, limit int) ([]models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getActivityLogByUserID(userID, limit)
}

// CreateActivityLog appends an activity entry and assigns its id
func (s *MemoryStorage) CreateActivityLog(entry *models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createActivityLog(entry)
}

// Transaction runs fn while holding the store lock, so the grouped writes are
// observed together. Map writes here cannot partially fail, which keeps the
// commit-or-nothing contract trivially true.
func (s *MemoryStorage) Transaction(fn func(Storage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memTx{data: s.data})
}

// memTx exposes the same contract inside a Transaction without re-acquiring
// the store lock.
type memTx struct {
	data *memData
}

func (t *memTx) GetUser(id uint) (*models.User, error) { return t.data.getUser(id) }
func (t *memTx) GetUserByUsername(username string) (*models.User, error) {
	return t.data.getUserByUsername(username)
}
func (t *memTx) CreateUser(user *models.User) error { return t.data.createUser(user) }
func (t *memTx) GetCampaignsByUserID(userID uint) ([]models.Campaign, error) {
	return t.data.getCampaignsByUserID(userID)
}
func (t *memTx) GetCampaign(id uint) (*models.Campaign, error) { return t.data.getCampaign(id) }
func (t *memTx) CreateCampaign(campaign *models.Campaign) error {
	return t.data.createCampaign(campaign)
}
func (t *memTx) UpdateCampaign(id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	return t.data.updateCampaign(id, patch)
}
func (t *memTx) GetTask(id uint) (*models.Task, error) { return t.data.getTask(id) }
func (t *memTx) GetTasksByCampaignID(campaignID uint) ([]models.Task, error) {
	return t.data.getTasksByCampaignID(campaignID)
}
func (t *memTx) GetTasksByUserID(userID uint) ([]models.Task, error) {
	return t.data.getTasksByUserID(userID)
}
func (t *memTx) CreateTask(task *models.Task) error { return t.data.createTask(task) }
func (t *memTx) UpdateTask(id uint, patch models.TaskPatch) (*models.Task, error) {
	return t.data.updateTask(id, patch)
}
func (t *memTx) GetAnalyticsByUserID(userID uint) ([]models.Analytics, error) {
	return t.data.getAnalyticsByUserID(userID)
}
func (t *memTx) GetAnalyticsByDate(userID uint, date string) (*models.Analytics, error) {
	return t.data.getAnalyticsByDate(userID, date)
}
func (t *memTx) CreateOrUpdateAnalytics(upsert models.AnalyticsUpsert) (*models.Analytics, error) {
	return t.data.createOrUpdateAnalytics(upsert)
}
func (t *memTx) GetActivityLogByUserID(userID uint, limit int) ([]models.ActivityLog, error) {
	return t.data.getActivityLogByUserID(userID, limit)
}
func (t *memTx) CreateActivityLog(entry *models.ActivityLog) error {
	return t.data.createActivityLog(entry)
}
func (t *memTx) Transaction(fn func(Storage) error) error { return fn(t) }

func (d *memData) getUser(id uint) (*models.User, error) {
	user, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (d *memData) getUserByUsername(username string) (*models.User, error) {
	for _, user := range d.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memData) createUser(user *models.User) error {
	for _, existing := range d.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %q already exists", user.Username)
		}
	}
	user.ID = d.nextUserID
	d.nextUserID++
	d.users[user.ID] = *user
	return nil
}

func (d *memData) getCampaignsByUserID(userID uint) ([]models.Campaign, error) {
	campaigns := make([]models.Campaign, 0)
	for _, campaign := range d.campaigns {
		if campaign.UserID == userID {
			campaigns = append(campaigns, campaign)
		}
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })
	return campaigns, nil
}

func (d *memData) getCampaign(id uint) (*models.Campaign, error) {
	campaign, ok := d.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &campaign, nil
}

func (d *memData) createCampaign(campaign *models.Campaign) error {
	now := time.Now()
	campaign.ID = d.nextCampaignID
	d.nextCampaignID++
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusActive
	}
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	d.campaigns[campaign.ID] = *campaign
	return nil
}

func (d *memData) updateCampaign(id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	campaign, ok := d.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		campaign.Name = *patch.Name
	}
	if patch.Type != nil {
		campaign.Type = *patch.Type
	}
	if patch.Status != nil {
		campaign.Status = *patch.Status
	}
	if patch.Settings != nil {
		campaign.Settings = *patch.Settings
	}
	now := time.Now()
	if !now.After(campaign.UpdatedAt) {
		// The clock may not tick between two writes; UpdatedAt must still
		// strictly increase.
		now = campaign.UpdatedAt.Add(time.Nanosecond)
	}
	campaign.UpdatedAt = now
	d.campaigns[id] = campaign
	return &campaign, nil
}

func (d *memData) getTask(id uint) (*models.Task, error) {
	task, ok := d.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (d *memData) getTasksByCampaignID(campaignID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for _, task := range d.tasks {
		if task.CampaignID == campaignID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (d *memData) getTasksByUserID(userID uint) ([]models.Task, error) {
	owned := make(map[uint]bool)
	for _, campaign := range d.campaigns {
		if campaign.UserID == userID {
			owned[campaign.ID] = true
		}
	}
	tasks := make([]models.Task, 0)
	for _, task := range d.tasks {
		if owned[task.CampaignID] {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (d *memData) createTask(task *models.Task) error {
	task.ID = d.nextTaskID
	d.nextTaskID++
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	task.CreatedAt = time.Now()
	d.tasks[task.ID] = *task
	return nil
}

func (d *memData) updateTask(id uint, patch models.TaskPatch) (*models.Task, error) {
	task, ok := d.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Result != nil {
		task.Result = *patch.Result
	}
	if patch.Content != nil {
		task.Content = *patch.Content
	}
	if patch.ExecutedAt != nil {
		executedAt := *patch.ExecutedAt
		task.ExecutedAt = &executedAt
	}
	d.tasks[id] = task
	return &task, nil
}

func (d *memData) getAnalyticsByUserID(userID uint) ([]models.Analytics, error) {
	rows := make([]models.Analytics, 0)
	for _, row := range d.analytics {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	// Date descending; the YYYY-MM-DD layout sorts lexicographically.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows, nil
}

func (d *memData) getAnalyticsByDate(userID uint, date string) (*models.Analytics, error) {
	row, ok := d.analytics[analyticsKey(userID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (d *memData) createOrUpdateAnalytics(upsert models.AnalyticsUpsert) (*models.Analytics, error) {
	key := analyticsKey(upsert.UserID, upsert.Date)
	row, ok := d.analytics[key]
	if !ok {
		row = models.Analytics{
			ID:     d.nextAnalyticsID,
			UserID: upsert.UserID,
			Date:   upsert.Date,
		}
		d.nextAnalyticsID++
	}
	mergeAnalytics(&row, upsert)
	d.analytics[key] = row
	return &row, nil
}

func (d *memData) getActivityLogByUserID(userID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	entries := make([]models.ActivityLog, 0)
	for _, entry := range d.activityLogs {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (d *memData) createActivityLog(entry *models.ActivityLog) error {
	entry.ID = d.nextActivityID
	d.nextActivityID++
	entry.CreatedAt = time.Now()
	d.activityLogs[entry.ID] = *entry
	return nil
}

// mergeAnalytics applies the upsert's non-nil counters onto row
func mergeAnalytics(row *models.Analytics, upsert models.AnalyticsUpsert) {
	if upsert.ConnectionsSent != nil {
		row.ConnectionsSent = *upsert.ConnectionsSent
	}
	if upsert.ConnectionsAccepted != nil {
		row.ConnectionsAccepted = *upsert.ConnectionsAccepted
	}
	if upsert.MessagesSent != nil {
		row.MessagesSent = *upsert.MessagesSent
	}
	if upsert.ContentShared != nil {
		row.ContentShared = *upsert.ContentShared
	}
	if upsert.LikesGiven != nil {
		row.LikesGiven = *upsert.LikesGiven
	}
	if upsert.CommentsGiven != nil {
		row.CommentsGiven = *upsert.CommentsGiven
	}
}
