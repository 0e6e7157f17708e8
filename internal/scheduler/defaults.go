package scheduler

import (
	"log"
	"time"

	"github.com/riinujain/taskflow-demo/internal/realtime"
	"github.com/riinujain/taskflow-demo/internal/report"
	"github.com/riinujain/taskflow-demo/internal/store"

	"gorm.io/gorm"
)

// RegisterDefaultJobs installs the standard background jobs: daily project
// summaries at 08:00, an hourly overdue scan, task reminders every two
// hours, and a midnight cleanup of stale done tasks.
func RegisterDefaultJobs(r *Registry, hub *realtime.Hub) error {
	defaults := []struct {
		name    string
		trigger Trigger
		fn      JobFunc
	}{
		{"daily_summary", DailyAt(8, 0), sendDailySummaries(hub)},
		{"overdue_check", Every(60), checkOverdueTasks(hub)},
		{"task_reminders", Every(120), sendTaskReminders(hub)},
		{"cleanup", DailyAt(0, 0), cleanupOldTasks},
	}

	for _, d := range defaults {
		if err := r.Register(d.name, d.trigger, d.fn); err != nil {
			return err
		}
	}
	return nil
}

// sendDailySummaries builds a summary for every active project and pushes
// the metrics to the project owner's websocket clients.
func sendDailySummaries(hub *realtime.Hub) JobFunc {
	return func(db *gorm.DB, now time.Time) error {
		s := store.New(db)
		projects, err := s.ActiveProjects()
		if err != nil {
			return err
		}

		for i := range projects {
			tasks, err := s.TasksByProject(projects[i].ID)
			if err != nil {
				return err
			}
			summary, err := report.BuildDailySummary(&projects[i], tasks, report.SummaryOptions{
				IncludeOverdue:   true,
				IncludeAssignees: true,
			}, now)
			if err != nil {
				return err
			}
			hub.BroadcastJSON(projects[i].OwnerID, map[string]any{
				"type":       "daily_summary",
				"project_id": projects[i].ID,
				"metrics":    summary.Metrics,
			})
		}

		log.Printf("scheduler: sent daily summaries for %d projects", len(projects))
		return nil
	}
}

// checkOverdueTasks counts overdue tasks per assignee and alerts them.
func checkOverdueTasks(hub *realtime.Hub) JobFunc {
	return func(db *gorm.DB, now time.Time) error {
		overdue, err := store.New(db).OverdueTasks(now)
		if err != nil {
			return err
		}

		byAssignee := make(map[uint]int)
		for _, t := range overdue {
			if t.AssignedTo != nil {
				byAssignee[*t.AssignedTo]++
			}
		}
		for userID, count := range byAssignee {
			hub.BroadcastJSON(userID, map[string]any{
				"type":          "overdue_alert",
				"overdue_count": count,
			})
		}

		log.Printf("scheduler: found %d overdue tasks", len(overdue))
		return nil
	}
}

// sendTaskReminders notifies assignees of tasks due within 48 hours, tagged
// with the stricter reminder urgency policy.
func sendTaskReminders(hub *realtime.Hub) JobFunc {
	return func(db *gorm.DB, now time.Time) error {
		dueSoon, err := store.New(db).TasksDueWithin(now, 48*time.Hour)
		if err != nil {
			return err
		}

		policy := report.TightUrgencyPolicy()
		sent := 0
		for _, t := range dueSoon {
			if t.AssignedTo == nil {
				continue
			}
			hub.BroadcastJSON(*t.AssignedTo, map[string]any{
				"type":    "task_reminder",
				"task_id": t.ID,
				"title":   t.Title,
				"urgency": policy.Classify(t, now),
			})
			sent++
		}

		log.Printf("scheduler: sent %d task reminders", sent)
		return nil
	}
}

// cleanupOldTasks deletes done tasks untouched for 90 days.
func cleanupOldTasks(db *gorm.DB, now time.Time) error {
	deleted, err := store.New(db).DeleteDoneTasksOlderThan(now.AddDate(0, 0, -90))
	if err != nil {
		return err
	}
	log.Printf("scheduler: cleaned up %d old tasks", deleted)
	return nil
}
