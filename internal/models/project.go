package models

import (
	"time"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
)

// Project represents a collection of tasks owned by a user
type Project struct {
	ID          uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string        `json:"name" gorm:"not null;uniqueIndex:uq_project_name_owner"`
	Description string        `json:"description"`
	OwnerID     uint          `json:"owner_id" gorm:"column:owner_id;not null;index;uniqueIndex:uq_project_name_owner"`
	Status      ProjectStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}
