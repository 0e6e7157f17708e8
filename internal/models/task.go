package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// Task represents a work item within a project
type Task struct {
	ID            uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID     uint         `json:"project_id" gorm:"column:project_id;not null;index"`
	Title         string       `json:"title" gorm:"not null"`
	Description   string       `json:"description"`
	Status        TaskStatus   `json:"status" gorm:"not null;default:'todo'"`
	Priority      TaskPriority `json:"priority" gorm:"not null;default:'medium'"`
	AssignedTo    *uint        `json:"assigned_to" gorm:"column:assigned_to;index"`
	DueDate       *time.Time   `json:"due_date" gorm:"column:due_date;index"`
	CommentsCount int          `json:"comments_count" gorm:"column:comments_count;not null;default:0"`
	CreatedAt     time.Time    `json:"created_at"`
	// UpdatedAt stays null until the task is first modified; gorm's
	// automatic tracking is disabled and handlers set it explicitly.
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task is past due and still open.
// A done task is never overdue regardless of its due date.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}
