package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectRouter(userID uint) *gin.Engine {
	r := newTestRouter()
	authed := r.Group("", asUser(userID))
	authed.POST("/api/projects", CreateProject)
	authed.GET("/api/projects", GetProjects)
	authed.GET("/api/projects/:id", GetProjectByID)
	authed.PATCH("/api/projects/:id", UpdateProject)
	authed.DELETE("/api/projects/:id", DeleteProject)
	authed.GET("/api/projects/:id/stats", GetProjectStats)
	return r
}

func TestCreateProject(t *testing.T) {
	setupTestDB(t)
	r := projectRouter(1)

	w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":        "Apollo",
		"description": "Moonshot",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Apollo", body["name"])
	assert.Equal(t, "active", body["status"])
	assert.EqualValues(t, 1, body["owner_id"])
}

func TestCreateProject_DuplicateNameSameOwner(t *testing.T) {
	setupTestDB(t)
	r := projectRouter(1)

	w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"name": "Apollo"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"name": "Apollo"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Another owner may reuse the name
	other := projectRouter(2)
	w = doJSON(t, other, http.MethodPost, "/api/projects", map[string]any{"name": "Apollo"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetProjects_OwnedOnly(t *testing.T) {
	setupTestDB(t)
	seedProject(t, "Mine", 1)
	seedProject(t, "Also mine", 1)
	seedProject(t, "Someone else's", 2)

	r := projectRouter(1)
	w := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
}

func TestUpdateProject(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	r := projectRouter(1)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/projects/%d", project.ID), map[string]any{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Project
	require.NoError(t, database.GetDB().First(&updated, project.ID).Error)
	assert.Equal(t, models.ProjectCompleted, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/projects/%d", project.ID), map[string]any{
		"status": "paused",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProject_NotOwner(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)

	r := projectRouter(2)
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/projects/%d", project.ID), map[string]any{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject_CascadesTasks(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	seedTask(t, project.ID, "one", models.StatusTodo, models.PriorityLow, nil)
	seedTask(t, project.ID, "two", models.StatusDone, models.PriorityLow, nil)

	r := projectRouter(1)
	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projectCount, taskCount int64
	require.NoError(t, database.GetDB().Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, database.GetDB().Model(&models.Task{}).Count(&taskCount).Error)
	assert.Zero(t, projectCount)
	assert.Zero(t, taskCount)
}

func TestGetProjectStats(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	seedTask(t, project.ID, "t1", models.StatusTodo, models.PriorityLow, nil)
	seedTask(t, project.ID, "t2", models.StatusTodo, models.PriorityLow, nil)
	seedTask(t, project.ID, "d1", models.StatusDone, models.PriorityLow, nil)

	r := projectRouter(1)
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%d/stats", project.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["todo"])
	assert.EqualValues(t, 1, body["done"])
	// Statuses with no tasks still appear as zero
	assert.EqualValues(t, 0, body["in_progress"])
	assert.EqualValues(t, 0, body["blocked"])
	assert.EqualValues(t, 3, body["total"])
}
