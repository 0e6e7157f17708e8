package handlers

import (
	"errors"
	"net/http"

	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"
	"github.com/riinujain/taskflow-demo/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCommentRequest represents the request payload for adding a comment
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment handles POST /api/tasks/:id/comments
// Adds a comment and bumps the task's comment counter in one transaction
func CreateComment(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := database.GetDB().First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	comment := models.Comment{
		TaskID:  task.ID,
		UserID:  userID,
		Content: req.Content,
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&task).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	// Let the assignee know about new discussion on their task
	if task.AssignedTo != nil && *task.AssignedTo != userID {
		realtime.GetHub().BroadcastJSON(*task.AssignedTo, map[string]any{
			"type":    "comment_added",
			"task_id": task.ID,
		})
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComments handles GET /api/tasks/:id/comments
func GetComments(c *gin.Context) {
	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var task models.Task
	if err := database.GetDB().First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	var comments []models.Comment
	if err := database.GetDB().Where("task_id = ?", taskID).Order("id").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id":  taskID,
		"comments": comments,
		"count":    len(comments),
	})
}
