package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/riinujain/taskflow-demo/internal/cache"
	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"
	"github.com/riinujain/taskflow-demo/internal/report"
	"github.com/riinujain/taskflow-demo/internal/store"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves report endpoints with a short-lived summary cache.
// The cache is injected at construction, never a package global.
type ReportHandler struct {
	summaries *cache.TTLCache[string, *report.Summary]
	ttl       time.Duration
}

// NewReportHandler creates a report handler caching summaries for ttl.
func NewReportHandler(ttl time.Duration) *ReportHandler {
	return &ReportHandler{
		summaries: cache.New[string, *report.Summary](),
		ttl:       ttl,
	}
}

func queryBool(c *gin.Context, name string, fallback bool) bool {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// GetDailySummary handles GET /api/reports/daily-summary?project_id=N
// Query params: compact, include_overdue, include_assignees (booleans).
// Returns the rendered text and the raw metrics side by side.
func (h *ReportHandler) GetDailySummary(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
		return
	}

	opts := report.SummaryOptions{
		IncludeOverdue:   queryBool(c, "include_overdue", true),
		IncludeAssignees: queryBool(c, "include_assignees", true),
		Compact:          queryBool(c, "compact", false),
	}

	key := fmt.Sprintf("summary:%d:%v:%v:%v", projectID, opts.IncludeOverdue, opts.IncludeAssignees, opts.Compact)
	if cached, ok := h.summaries.Get(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	s := store.New(database.GetDB())
	project, err := s.ProjectByID(uint(projectID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	tasks, err := s.TasksByProject(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	summary, err := report.BuildDailySummary(project, tasks, opts, time.Now())
	if err != nil {
		// Project was resolved above, so this is unreachable in practice
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	h.summaries.Set(key, summary, h.ttl)
	c.JSON(http.StatusOK, summary)
}

// GetOverdueReport handles GET /api/reports/overdue
// Returns overdue counts grouped by priority plus the worst offenders.
func (h *ReportHandler) GetOverdueReport(c *gin.Context) {
	now := time.Now()
	overdue, err := store.New(database.GetDB()).OverdueTasks(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overdue tasks"})
		return
	}

	byPriority := map[string]int{
		string(models.PriorityCritical): 0,
		string(models.PriorityHigh):     0,
		string(models.PriorityMedium):   0,
		string(models.PriorityLow):      0,
	}
	var critical, high []models.Task
	for _, t := range overdue {
		if _, ok := byPriority[string(t.Priority)]; ok {
			byPriority[string(t.Priority)]++
		}
		switch t.Priority {
		case models.PriorityCritical:
			if len(critical) < 10 {
				critical = append(critical, t)
			}
		case models.PriorityHigh:
			if len(high) < 10 {
				high = append(high, t)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_overdue":  len(overdue),
		"by_priority":    byPriority,
		"critical_tasks": critical,
		"high_tasks":     high,
	})
}

// GetTaskSummary handles GET /api/tasks/:id/summary
// Returns the task's rendered status line and urgency label.
func (h *ReportHandler) GetTaskSummary(c *gin.Context) {
	taskID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := store.New(database.GetDB()).TaskByID(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	now := time.Now()
	opts := report.DefaultLineOptions()
	opts.Compact = queryBool(c, "compact", false)

	c.JSON(http.StatusOK, gin.H{
		"task_id": task.ID,
		"line":    report.RenderLine(*task, opts, now),
		"urgency": report.Classify(*task, now),
	})
}
