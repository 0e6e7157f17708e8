package scheduler

import (
	"testing"
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"
	"github.com/riinujain/taskflow-demo/internal/realtime"
	"github.com/riinujain/taskflow-demo/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestRegisterDefaultJobs(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := NewRegistry(db)
	require.NoError(t, RegisterDefaultJobs(r, realtime.GetHub()))

	statuses := r.AllStatuses()
	require.Len(t, statuses, 4)
	require.Equal(t, "daily_summary", statuses[0].Name)
	require.Equal(t, "daily at 08:00", statuses[0].Trigger)
	require.Equal(t, "overdue_check", statuses[1].Name)
	require.Equal(t, "every 60m", statuses[1].Trigger)
	require.Equal(t, "task_reminders", statuses[2].Name)
	require.Equal(t, "cleanup", statuses[3].Name)
	require.Equal(t, "daily at 00:00", statuses[3].Trigger)
}

func TestDefaultJobs_RunAgainstDatabase(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	project := models.Project{Name: "Apollo", OwnerID: 1, Status: models.ProjectActive}
	require.NoError(t, db.Create(&project).Error)

	past := time.Now().Add(-48 * time.Hour)
	assignee := uint(1)
	require.NoError(t, db.Create(&models.Task{
		ProjectID:  project.ID,
		Title:      "late task",
		Status:     models.StatusTodo,
		Priority:   models.PriorityHigh,
		AssignedTo: &assignee,
		DueDate:    &past,
	}).Error)

	r := NewRegistry(db)
	require.NoError(t, RegisterDefaultJobs(r, realtime.GetHub()))

	for _, name := range []string{"daily_summary", "overdue_check", "task_reminders", "cleanup"} {
		require.NoError(t, r.RunNow(name), "job %s", name)
	}
}

func TestCleanup_DeletesStaleDoneTasks(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	project := models.Project{Name: "Apollo", OwnerID: 1, Status: models.ProjectActive}
	require.NoError(t, db.Create(&project).Error)

	old := time.Now().Add(-120 * 24 * time.Hour)
	stale := models.Task{ProjectID: project.ID, Title: "ancient", Status: models.StatusDone, Priority: models.PriorityLow, CreatedAt: old}
	fresh := models.Task{ProjectID: project.ID, Title: "recent", Status: models.StatusDone, Priority: models.PriorityLow}
	open := models.Task{ProjectID: project.ID, Title: "still open", Status: models.StatusTodo, Priority: models.PriorityLow, CreatedAt: old}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&open).Error)

	r := NewRegistry(db)
	require.NoError(t, RegisterDefaultJobs(r, realtime.GetHub()))
	require.NoError(t, r.RunNow("cleanup"))

	var remaining []models.Task
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, task := range remaining {
		require.NotEqual(t, "ancient", task.Title)
	}
}
