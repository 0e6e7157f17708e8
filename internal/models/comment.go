package models

import (
	"time"
)

// Comment represents a discussion entry on a task
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TaskID    uint      `json:"task_id" gorm:"column:task_id;not null;index"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Comment Model
func (Comment) TableName() string {
	return "comments"
}
