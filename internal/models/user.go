package models

import (
	"time"
)

// User represents a user in the system
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Name         string    `json:"name" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
