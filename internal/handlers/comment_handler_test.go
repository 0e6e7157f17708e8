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

func commentRouter(userID uint) *gin.Engine {
	r := newTestRouter()
	authed := r.Group("", asUser(userID))
	authed.POST("/api/tasks/:id/comments", CreateComment)
	authed.GET("/api/tasks/:id/comments", GetComments)
	return r
}

func TestCreateComment_BumpsCounter(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	task := seedTask(t, project.ID, "Discussed", models.StatusTodo, models.PriorityLow, nil)

	r := commentRouter(1)
	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", task.ID), map[string]any{
			"content": fmt.Sprintf("comment %d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var updated models.Task
	require.NoError(t, database.GetDB().First(&updated, task.ID).Error)
	assert.Equal(t, 3, updated.CommentsCount)
}

func TestCreateComment_TaskNotFound(t *testing.T) {
	setupTestDB(t)
	r := commentRouter(1)

	w := doJSON(t, r, http.MethodPost, "/api/tasks/999/comments", map[string]any{
		"content": "into the void",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	task := seedTask(t, project.ID, "Discussed", models.StatusTodo, models.PriorityLow, nil)

	r := commentRouter(1)
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", task.ID), map[string]any{
		"content": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetComments(t *testing.T) {
	setupTestDB(t)
	project := seedProject(t, "Apollo", 1)
	task := seedTask(t, project.ID, "Discussed", models.StatusTodo, models.PriorityLow, nil)
	other := seedTask(t, project.ID, "Quiet", models.StatusTodo, models.PriorityLow, nil)

	for i := 0; i < 2; i++ {
		require.NoError(t, database.GetDB().Create(&models.Comment{
			TaskID:  task.ID,
			UserID:  1,
			Content: fmt.Sprintf("note %d", i),
		}).Error)
	}

	r := commentRouter(1)
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments", other.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.EqualValues(t, 0, body["count"])
}
