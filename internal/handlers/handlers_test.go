package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/models"
	"github.com/riinujain/taskflow-demo/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
}

// asUser injects the authenticated identity the way the JWT middleware does,
// so handler tests do not need to mint real tokens.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", "test@example.com")
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedProject(t *testing.T, name string, ownerID uint) models.Project {
	t.Helper()
	project := models.Project{Name: name, OwnerID: ownerID, Status: models.ProjectActive}
	require.NoError(t, database.GetDB().Create(&project).Error)
	return project
}

func seedTask(t *testing.T, projectID uint, title string, status models.TaskStatus, priority models.TaskPriority, due *time.Time) models.Task {
	t.Helper()
	task := models.Task{ProjectID: projectID, Title: title, Status: status, Priority: priority, DueDate: due}
	require.NoError(t, database.GetDB().Create(&task).Error)
	return task
}
