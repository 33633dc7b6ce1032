package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningSession is one completed Pomodoro interval. Duration is whole
// minutes and must be positive; each minute is worth two points.
type LearningSession struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SkillID *string `gorm:"index" json:"skillId"`
	Skill   *Skill  `gorm:"constraint:OnDelete:SET NULL" json:"skill,omitempty"`

	DurationMinutes int    `gorm:"not null" json:"durationMinutes"`
	Notes           string `json:"notes"`
}

func (s *LearningSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
