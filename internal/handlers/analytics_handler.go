package handlers

import (
	"math"
	"net/http"

	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type distributionRow struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

func distribution(c *gin.Context, column string, zeroKeys []string) {
	db := database.GetDB()
	query := db.Model(&models.Task{}).
		Select(column + " as key, COUNT(*) as count").
		Group(column)
	if v := c.Query("project_id"); v != "" {
		query = query.Where("project_id = ?", v)
	}

	var rows []distributionRow
	if err := query.Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute distribution"})
		return
	}

	counts := make(map[string]int64, len(zeroKeys))
	for _, k := range zeroKeys {
		counts[k] = 0
	}
	var total int64
	for _, r := range rows {
		counts[r.Key] = r.Count
		total += r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"distribution": counts,
		"total":        total,
	})
}

// GetStatusDistribution handles GET /api/analytics/status-distribution
// Optional query param: project_id
func GetStatusDistribution(c *gin.Context) {
	distribution(c, "status", []string{
		string(models.StatusTodo),
		string(models.StatusInProgress),
		string(models.StatusDone),
		string(models.StatusBlocked),
	})
}

// GetPriorityDistribution handles GET /api/analytics/priority-distribution
// Optional query param: project_id
func GetPriorityDistribution(c *gin.Context) {
	distribution(c, "priority", []string{
		string(models.PriorityLow),
		string(models.PriorityMedium),
		string(models.PriorityHigh),
		string(models.PriorityCritical),
	})
}

// GetCompletionRate handles GET /api/analytics/completion-rate
// Optional query param: project_id
func GetCompletionRate(c *gin.Context) {
	db := database.GetDB()
	base := func() *gorm.DB {
		q := db.Model(&models.Task{})
		if v := c.Query("project_id"); v != "" {
			q = q.Where("project_id = ?", v)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tasks"})
		return
	}

	var done int64
	if err := base().Where("status = ?", models.StatusDone).Count(&done).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count done tasks"})
		return
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(done)/float64(total)*10000) / 100
	}

	c.JSON(http.StatusOK, gin.H{
		"total":           total,
		"done":            done,
		"completion_rate": rate,
	})
}
