package report

import (
	"strings"
	"testing"
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleProject() *models.Project {
	return &models.Project{ID: 1, Name: "Apollo", OwnerID: 1, Status: models.ProjectActive}
}

func oneOfEachStatus() []models.Task {
	return []models.Task{
		{ID: 1, Title: "done task", Status: models.StatusDone, Priority: models.PriorityLow},
		{ID: 2, Title: "active task", Status: models.StatusInProgress, Priority: models.PriorityMedium},
		{ID: 3, Title: "open task", Status: models.StatusTodo, Priority: models.PriorityHigh},
		{ID: 4, Title: "stuck task", Status: models.StatusBlocked, Priority: models.PriorityCritical},
	}
}

func TestBuildDailySummary_Metrics(t *testing.T) {
	summary, err := BuildDailySummary(sampleProject(), oneOfEachStatus(), SummaryOptions{}, testNow)
	require.NoError(t, err)

	m := summary.Metrics
	require.Equal(t, 4, m.Total)
	require.Equal(t, 1, m.Done)
	require.Equal(t, 1, m.InProgress)
	require.Equal(t, 1, m.Todo)
	require.Equal(t, 1, m.Blocked)

	// Footer consistency: the four valid statuses account for every task
	require.Equal(t, m.Total, m.Done+m.InProgress+m.Todo+m.Blocked)
}

func TestBuildDailySummary_MissingProject(t *testing.T) {
	_, err := BuildDailySummary(nil, oneOfEachStatus(), SummaryOptions{}, testNow)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestBuildDailySummary_HeaderAndFooter(t *testing.T) {
	summary, err := BuildDailySummary(sampleProject(), oneOfEachStatus(), SummaryOptions{}, testNow)
	require.NoError(t, err)

	require.Contains(t, summary.Text, "Daily Summary for Project: Apollo")
	require.Contains(t, summary.Text, "Generated: 2025-06-01 12:00")
	require.Contains(t, summary.Text, "Total Tasks: 4")
	require.Contains(t, summary.Text, "Completed: 1")
	require.Contains(t, summary.Text, "In Progress: 1")
	require.Contains(t, summary.Text, "Todo: 1")
	require.Contains(t, summary.Text, "Blocked: 1")
	require.Equal(t, testNow, summary.GeneratedAt)
}

func TestBuildDailySummary_PreservesTaskOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: 9, Title: "zzz last created", Status: models.StatusTodo, Priority: models.PriorityLow},
		{ID: 1, Title: "aaa first created", Status: models.StatusTodo, Priority: models.PriorityLow},
	}

	summary, err := BuildDailySummary(sampleProject(), tasks, SummaryOptions{}, testNow)
	require.NoError(t, err)
	require.Less(t,
		strings.Index(summary.Text, "zzz last created"),
		strings.Index(summary.Text, "aaa first created"))
}

func TestBuildDailySummary_OverdueSection(t *testing.T) {
	past := testNow.Add(-24 * time.Hour)
	tasks := []models.Task{
		{ID: 1, Title: "pay-invoice", Status: models.StatusTodo, Priority: models.PriorityHigh, DueDate: &past},
		{ID: 2, Title: "shipped-anyway", Status: models.StatusDone, Priority: models.PriorityHigh, DueDate: &past},
	}

	summary, err := BuildDailySummary(sampleProject(), tasks, SummaryOptions{IncludeOverdue: true}, testNow)
	require.NoError(t, err)

	// Done tasks never count as overdue
	require.Equal(t, 1, summary.Metrics.Overdue)
	require.Contains(t, summary.Text, "OVERDUE TASKS: 1")
	// Count only, no second listing of the late task
	require.Equal(t, 1, strings.Count(summary.Text, "pay-invoice"))

	noSection, err := BuildDailySummary(sampleProject(), tasks, SummaryOptions{}, testNow)
	require.NoError(t, err)
	require.NotContains(t, noSection.Text, "OVERDUE TASKS")
}

func TestBuildDailySummary_EmptyProject(t *testing.T) {
	summary, err := BuildDailySummary(sampleProject(), nil, SummaryOptions{IncludeOverdue: true}, testNow)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Metrics.Total)
	require.Contains(t, summary.Text, "Total Tasks: 0")
	require.NotContains(t, summary.Text, "OVERDUE TASKS")
}
