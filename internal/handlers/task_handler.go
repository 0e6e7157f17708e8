package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"
	"github.com/riinujain/taskflow-demo/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	ProjectID   uint                `json:"project_id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	AssignedTo  *uint               `json:"assigned_to"`
	DueDate     *time.Time          `json:"due_date"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority"`
	AssignedTo  *uint                `json:"assigned_to"`
	DueDate     *time.Time           `json:"due_date"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

func validStatus(s models.TaskStatus) bool {
	switch s {
	case models.StatusTodo, models.StatusInProgress, models.StatusDone, models.StatusBlocked:
		return true
	}
	return false
}

func validPriority(p models.TaskPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
		return true
	}
	return false
}

/*
*
GetTasks handles GET /api/tasks
Returns tasks with pagination. Optional query params: project_id,
assignee_id, status to filter; page, limit, sort (asc|desc on created_at).
*/
func GetTasks(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "20")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "desc"))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	order := "created_at desc"
	if sortParam == "asc" {
		order = "created_at asc"
	}

	db := database.GetDB()
	query := db.Model(&models.Task{})
	if v := c.Query("project_id"); v != "" {
		query = query.Where("project_id = ?", v)
	}
	if v := c.Query("assignee_id"); v != "" {
		query = query.Where("assigned_to = ?", v)
	}
	if v := c.Query("status"); v != "" {
		if !validStatus(models.TaskStatus(v)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", v)
	}

	// Total count (without pagination)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count tasks",
		})
		return
	}

	// Fetch paginated tasks with sorting
	var tasks []models.Task
	result := query.Session(&gorm.Session{}).Order(order).Limit(limit).Offset(offset).Find(&tasks)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks), // number of items in this page
		"total": total,      // total tasks (all pages) for current filter
		"page":  page,
		"limit": limit,
		"sort":  sortParam,
	})
}

/*
*
CreateTask handles POST /api/tasks
Creates a new task in an existing project
*/
func CreateTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Set default values if not provided
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !validPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	// Task must belong to an existing project
	var project models.Project
	if err := database.GetDB().First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id: project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate project_id"})
		}
		return
	}

	task := models.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}

	result := database.GetDB().Create(&task)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create task",
		})
		return
	}

	// Broadcast event to the authenticated user's channels
	realtime.GetHub().BroadcastJSON(userID, map[string]any{
		"type":    "task_created",
		"task_id": task.ID,
		"user_id": userID,
	})
	// Notify the assignee, if someone else was assigned
	if task.AssignedTo != nil && *task.AssignedTo != userID {
		realtime.GetHub().BroadcastJSON(*task.AssignedTo, map[string]any{
			"type":    "task_assigned",
			"task_id": task.ID,
			"title":   task.Title,
		})
	}

	c.JSON(http.StatusCreated, task)
}

// GetTaskByID handles GET /api/tasks/:id
func GetTaskByID(c *gin.Context) {
	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var task models.Task
	result := database.GetDB().First(&task, taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PATCH /api/tasks/:id
func UpdateTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var existingTask models.Task
	result := database.GetDB().First(&existingTask, taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	// Parse update request
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	previousAssignee := existingTask.AssignedTo

	// Update fields if provided
	if req.Title != nil {
		existingTask.Title = *req.Title
	}
	if req.Description != nil {
		existingTask.Description = *req.Description
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		existingTask.Status = *req.Status
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		existingTask.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		existingTask.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil {
		existingTask.DueDate = req.DueDate
	}

	now := time.Now()
	existingTask.UpdatedAt = &now

	// Save updated task
	result = database.GetDB().Save(&existingTask)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update task",
		})
		return
	}

	// Broadcast update event
	realtime.GetHub().BroadcastJSON(userID, map[string]any{
		"type":    "task_updated",
		"task_id": existingTask.ID,
		"user_id": userID,
	})
	// Notify a newly assigned user
	if existingTask.AssignedTo != nil &&
		(previousAssignee == nil || *previousAssignee != *existingTask.AssignedTo) &&
		*existingTask.AssignedTo != userID {
		realtime.GetHub().BroadcastJSON(*existingTask.AssignedTo, map[string]any{
			"type":    "task_assigned",
			"task_id": existingTask.ID,
			"title":   existingTask.Title,
		})
	}

	c.JSON(http.StatusOK, existingTask)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
// Updates only the status of a task
func UpdateTaskStatus(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var task models.Task
	result := database.GetDB().First(&task, taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	now := time.Now()
	task.Status = req.Status
	task.UpdatedAt = &now
	if err := database.GetDB().Model(&task).
		Updates(map[string]any{"status": req.Status, "updated_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	// Broadcast status change
	realtime.GetHub().BroadcastJSON(userID, map[string]any{
		"type":    "task_status_changed",
		"task_id": task.ID,
		"status":  task.Status,
		"user_id": userID,
	})

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func DeleteTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var task models.Task
	result := database.GetDB().First(&task, taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete task",
		})
		return
	}

	// Broadcast deletion
	realtime.GetHub().BroadcastJSON(userID, map[string]any{
		"type":    "task_deleted",
		"task_id": taskID,
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}

// GetProjectTasks handles GET /api/projects/:id/tasks
// Returns all tasks of a project in storage order
func GetProjectTasks(c *gin.Context) {
	projectID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("project_id = ?", projectID).Order("id").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": projectID,
		"tasks":      tasks,
		"count":      len(tasks),
	})
}
