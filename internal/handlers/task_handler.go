package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(store storage.Storage) *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(store),
	}
}

// GetByCampaign godoc
// @Summary Get a campaign's tasks
// @Description Get the recorded tasks of a campaign the acting user owns
// @Tags tasks
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {array} models.Task
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/tasks [get]
func (h *TaskHandler) GetByCampaign(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	campaignID, ok := pathID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByCampaign(userID, campaignID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		logrus.Errorf("Failed to get tasks for campaign %d: %v", campaignID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetMyTasks godoc
// @Summary Get the user's tasks
// @Description Get every task under the acting user's campaigns
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Failure 500 {object} map[string]interface{}
// @Router /tasks [get]
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	tasks, err := h.taskService.GetTasksByUser(userID)
	if err != nil {
		logrus.Errorf("Failed to get tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Record a task
// @Description Record an automation task under a campaign the acting user owns
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body models.CreateTaskRequest true "Create task request"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid task data", err)
		return
	}

	task, err := h.taskService.CreateTask(userID, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		logrus.Errorf("Failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Apply a partial update to a task under the acting user's campaigns
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body models.TaskPatch true "Fields to update"
// @Success 200 {object} models.Task
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid task data", err)
		return
	}

	task, err := h.taskService.UpdateTask(userID, taskID, &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		logrus.Errorf("Failed to update task %d: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
