package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"
)

// LineOptions controls which segments RenderLine emits and how verbose
// they are. Compact mode drops bracketed labels and long phrases.
type LineOptions struct {
	Compact         bool
	IncludeAssignee bool
	IncludeDueDate  bool
	IncludeComments bool
}

// DefaultLineOptions enables every segment in non-compact form.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		IncludeAssignee: true,
		IncludeDueDate:  true,
		IncludeComments: true,
	}
}

// RenderLine formats one task as a single status line with a fixed field
// order: status marker, priority marker, title, assignee, due phrase,
// comment phrase. Segments are joined with single spaces so toggling any
// of them off never leaves stray separators.
func RenderLine(task models.Task, opts LineOptions, now time.Time) string {
	parts := make([]string, 0, 8)

	switch task.Status {
	case models.StatusDone:
		parts = append(parts, "✅")
		if !opts.Compact {
			parts = append(parts, "[COMPLETED]")
		}
	case models.StatusInProgress:
		parts = append(parts, "🔄")
		if !opts.Compact {
			parts = append(parts, "[IN PROGRESS]")
		}
	case models.StatusBlocked:
		parts = append(parts, "🚫")
		if !opts.Compact {
			parts = append(parts, "[BLOCKED]")
		}
	case models.StatusTodo:
		parts = append(parts, "📋")
		if !opts.Compact {
			parts = append(parts, "[TODO]")
		}
	default:
		// Unknown status falls back to a generic bullet
		parts = append(parts, "•")
	}

	switch task.Priority {
	case models.PriorityCritical:
		parts = append(parts, "🔴 CRITICAL:")
		if !opts.Compact {
			parts = append(parts, "(Action Required)")
		}
	case models.PriorityHigh:
		parts = append(parts, "🟠 HIGH:")
		if !opts.Compact {
			parts = append(parts, "(Important)")
		}
	case models.PriorityMedium:
		if opts.Compact {
			parts = append(parts, "🟡")
		} else {
			parts = append(parts, "🟡 MEDIUM:")
		}
	case models.PriorityLow:
		if opts.Compact {
			parts = append(parts, "🟢")
		} else {
			parts = append(parts, "🟢 LOW:")
		}
	default:
		// Unrecognized priority renders the raw string with no glyph
		if task.Priority != "" {
			parts = append(parts, string(task.Priority))
		}
	}

	parts = append(parts, task.Title)

	if opts.IncludeAssignee {
		if task.AssignedTo != nil {
			if opts.Compact {
				parts = append(parts, fmt.Sprintf("(#%d)", *task.AssignedTo))
			} else {
				parts = append(parts, fmt.Sprintf("[Assigned to User #%d]", *task.AssignedTo))
			}
		} else if !opts.Compact {
			parts = append(parts, "[Unassigned]")
		}
	}

	if opts.IncludeDueDate {
		if seg := dueSegment(task, opts.Compact, now); seg != "" {
			parts = append(parts, seg)
		}
	}

	if opts.IncludeComments && task.CommentsCount > 0 {
		parts = append(parts, commentSegment(task.CommentsCount, opts.Compact))
	}

	return strings.Join(parts, " ")
}

// dueSegment builds the due-date phrase. Done tasks never get one, so a
// completed task is never rendered as overdue.
func dueSegment(task models.Task, compact bool, now time.Time) string {
	if task.Status == models.StatusDone {
		return ""
	}
	if task.DueDate == nil {
		if compact {
			return ""
		}
		return "[No due date]"
	}

	remaining := task.DueDate.Sub(now)
	switch {
	case remaining < 0:
		days := int(math.Abs(math.Floor(remaining.Hours() / 24)))
		if compact {
			return fmt.Sprintf("[OVERDUE %dd]", days)
		}
		return fmt.Sprintf("⚠️ OVERDUE by %d days!", days)
	case remaining < 24*time.Hour:
		hours := int(remaining.Hours())
		if compact {
			return fmt.Sprintf("[Due %dh]", hours)
		}
		return fmt.Sprintf("⏰ Due in %d hours", hours)
	case remaining < 72*time.Hour:
		days := int(remaining.Hours() / 24)
		if compact {
			return fmt.Sprintf("[Due %dd]", days)
		}
		return fmt.Sprintf("📅 Due in %d days", days)
	default:
		if compact {
			return ""
		}
		return fmt.Sprintf("(Due: %s)", task.DueDate.Format("2006-01-02"))
	}
}

func commentSegment(count int, compact bool) string {
	if compact {
		return fmt.Sprintf("💬%d", count)
	}
	switch {
	case count > 10:
		return fmt.Sprintf("💬 %d comments (active discussion)", count)
	case count > 5:
		return fmt.Sprintf("💬 %d comments", count)
	default:
		return fmt.Sprintf("💬 %d", count)
	}
}
