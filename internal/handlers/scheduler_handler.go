package handlers

import (
	"errors"
	"net/http"

	"github.com/riinujain/taskflow-demo/internal/scheduler"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler exposes the job registry over HTTP.
type SchedulerHandler struct {
	registry *scheduler.Registry
}

// NewSchedulerHandler wraps a registry.
func NewSchedulerHandler(registry *scheduler.Registry) *SchedulerHandler {
	return &SchedulerHandler{registry: registry}
}

// ListJobs handles GET /api/jobs
func (h *SchedulerHandler) ListJobs(c *gin.Context) {
	jobs := h.registry.AllStatuses()
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// GetJob handles GET /api/jobs/:name
func (h *SchedulerHandler) GetJob(c *gin.Context) {
	status, err := h.registry.Status(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// RunJob handles POST /api/jobs/:name/run
// Executes the job immediately, bypassing its trigger. A body failure is
// surfaced to the caller, unlike the silent batch behavior of the poll loop.
func (h *SchedulerHandler) RunJob(c *gin.Context) {
	name := c.Param("name")
	if err := h.registry.RunNow(name); err != nil {
		if errors.Is(err, scheduler.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status, _ := h.registry.Status(name)
	c.JSON(http.StatusOK, gin.H{
		"message": "Job executed successfully",
		"job":     status,
	})
}

// EnableJob handles POST /api/jobs/:name/enable
func (h *SchedulerHandler) EnableJob(c *gin.Context) {
	name := c.Param("name")
	if !h.registry.Enable(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job enabled", "name": name})
}

// DisableJob handles POST /api/jobs/:name/disable
func (h *SchedulerHandler) DisableJob(c *gin.Context) {
	name := c.Param("name")
	if !h.registry.Disable(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job disabled", "name": name})
}
