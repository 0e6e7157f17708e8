package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"
)

// ErrProjectNotFound is returned when a summary is requested for an
// absent project.
var ErrProjectNotFound = errors.New("project not found")

// SummaryOptions controls the contents of a daily summary.
type SummaryOptions struct {
	IncludeOverdue   bool
	IncludeAssignees bool
	Compact          bool
}

// Metrics holds the per-status counts computed while rendering a summary.
type Metrics struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"in_progress"`
	Todo       int `json:"todo"`
	Blocked    int `json:"blocked"`
	Overdue    int `json:"overdue"`
}

// Summary is the rendered report plus its raw metrics, so callers that
// only need the counts never have to parse the text.
type Summary struct {
	Text        string    `json:"text"`
	Metrics     Metrics   `json:"metrics"`
	GeneratedAt time.Time `json:"generated_at"`
}

var rule = strings.Repeat("=", 50)

// BuildDailySummary renders a project status report from the supplied task
// snapshot. Tasks are emitted in the caller's order; stats are computed in
// the same pass, never from a second storage query.
func BuildDailySummary(project *models.Project, tasks []models.Task, opts SummaryOptions, now time.Time) (*Summary, error) {
	if project == nil {
		return nil, ErrProjectNotFound
	}

	lineOpts := LineOptions{
		Compact:         opts.Compact,
		IncludeAssignee: opts.IncludeAssignees,
		IncludeDueDate:  true,
		IncludeComments: true,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily Summary for Project: %s\n", project.Name)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04"))
	b.WriteString(rule + "\n\n")

	var m Metrics
	m.Total = len(tasks)
	for _, t := range tasks {
		b.WriteString(RenderLine(t, lineOpts, now))
		b.WriteByte('\n')

		switch t.Status {
		case models.StatusDone:
			m.Done++
		case models.StatusInProgress:
			m.InProgress++
		case models.StatusTodo:
			m.Todo++
		case models.StatusBlocked:
			m.Blocked++
		}
		if t.IsOverdue(now) {
			m.Overdue++
		}
	}

	// Overdue section is a count only, never a second listing
	if opts.IncludeOverdue && m.Overdue > 0 {
		b.WriteString("\n" + rule + "\n")
		fmt.Fprintf(&b, "⚠️  OVERDUE TASKS: %d\n", m.Overdue)
		b.WriteString(rule + "\n")
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Total Tasks: %d\n", m.Total)
	fmt.Fprintf(&b, "Completed: %d\n", m.Done)
	fmt.Fprintf(&b, "In Progress: %d\n", m.InProgress)
	fmt.Fprintf(&b, "Todo: %d\n", m.Todo)
	fmt.Fprintf(&b, "Blocked: %d\n", m.Blocked)

	return &Summary{
		Text:        b.String(),
		Metrics:     m,
		GeneratedAt: now,
	}, nil
}
