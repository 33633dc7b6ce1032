package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

func IsValidTaskPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Task is a user to-do item. Completed is monotonic: once set it is never
// reset, and re-completing is a no-op with no second point award.
type Task struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title     string       `gorm:"not null" json:"title"`
	Priority  TaskPriority `gorm:"type:text;default:'medium'" json:"priority"`
	DueDate   *string      `gorm:"type:date" json:"dueDate"` // YYYY-MM-DD
	Completed bool         `gorm:"default:false" json:"completed"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}
