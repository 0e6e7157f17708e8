package report

import (
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"
)

// UrgencyLabels names the categories an UrgencyPolicy can assign.
type UrgencyLabels struct {
	Overdue            string
	Urgent             string
	DueSoon            string
	Upcoming           string
	Normal             string
	NoDate             string
	HighPriorityNoDate string
}

// UrgencyPolicy holds the thresholds and label vocabulary used to classify
// how soon a task needs attention. Callers needing different cutoffs supply
// their own policy value instead of a second classifier.
type UrgencyPolicy struct {
	UrgentWithin   time.Duration
	UpcomingWithin time.Duration
	Labels         UrgencyLabels
}

// DefaultUrgencyPolicy returns the canonical 24h/3d policy.
func DefaultUrgencyPolicy() UrgencyPolicy {
	return UrgencyPolicy{
		UrgentWithin:   24 * time.Hour,
		UpcomingWithin: 72 * time.Hour,
		Labels: UrgencyLabels{
			Overdue:            "overdue",
			Urgent:             "urgent",
			DueSoon:            "due-soon",
			Upcoming:           "upcoming",
			Normal:             "normal",
			NoDate:             "no-urgency",
			HighPriorityNoDate: "high-priority-no-date",
		},
	}
}

// TightUrgencyPolicy returns the stricter 12h/2d variant used by reminder
// jobs that only want to flag tasks due imminently.
func TightUrgencyPolicy() UrgencyPolicy {
	p := DefaultUrgencyPolicy()
	p.UrgentWithin = 12 * time.Hour
	p.UpcomingWithin = 48 * time.Hour
	return p
}

// Classify maps a task's due date and priority to an urgency label.
// It is a pure function of (task, now) and never inspects storage.
func (p UrgencyPolicy) Classify(task models.Task, now time.Time) string {
	if task.DueDate == nil {
		if task.Priority == models.PriorityHigh || task.Priority == models.PriorityCritical {
			return p.Labels.HighPriorityNoDate
		}
		return p.Labels.NoDate
	}

	remaining := task.DueDate.Sub(now)
	switch {
	case remaining <= 0:
		return p.Labels.Overdue
	case remaining <= p.UrgentWithin:
		if task.Priority == models.PriorityHigh || task.Priority == models.PriorityCritical {
			return p.Labels.Urgent
		}
		return p.Labels.DueSoon
	case remaining <= p.UpcomingWithin:
		return p.Labels.Upcoming
	default:
		return p.Labels.Normal
	}
}

// Classify applies the default policy.
func Classify(task models.Task, now time.Time) string {
	return DefaultUrgencyPolicy().Classify(task, now)
}
