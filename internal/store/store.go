package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/riinujain/taskflow-demo/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides record access for the report and scheduler cores.
// Reads return snapshots in storage order; the cores never re-sort them.
type Store struct {
	db *gorm.DB
}

// New wraps a database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ProjectByID fetches one project, ErrNotFound if absent.
func (s *Store) ProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &project, nil
}

// TaskByID fetches one task, ErrNotFound if absent.
func (s *Store) TaskByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &task, nil
}

// TasksByProject returns all tasks of a project.
func (s *Store) TasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("project_id = ?", projectID).Order("id").Find(&tasks).Error
	return tasks, err
}

// TasksByAssignee returns all tasks assigned to a user.
func (s *Store) TasksByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("assigned_to = ?", userID).Order("id").Find(&tasks).Error
	return tasks, err
}

// OverdueTasks returns open tasks whose due date has passed.
func (s *Store) OverdueTasks(now time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Where("due_date IS NOT NULL AND due_date < ? AND status != ?", now, models.StatusDone).
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}

// TasksDueWithin returns open tasks due between now and now+window.
func (s *Store) TasksDueWithin(now time.Time, window time.Duration) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Where("due_date IS NOT NULL AND due_date > ? AND due_date <= ? AND status != ?",
			now, now.Add(window), models.StatusDone).
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}

// ActiveProjects returns all projects still in the active status.
func (s *Store) ActiveProjects() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("status = ?", models.ProjectActive).Order("id").Find(&projects).Error
	return projects, err
}

// DeleteDoneTasksOlderThan removes done tasks last touched before cutoff
// and reports how many were deleted. Used by the cleanup job.
func (s *Store) DeleteDoneTasksOlderThan(cutoff time.Time) (int64, error) {
	res := s.db.
		Where("status = ? AND COALESCE(updated_at, created_at) < ?", models.StatusDone, cutoff).
		Delete(&models.Task{})
	return res.RowsAffected, res.Error
}
