package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoadmapStep is a milestone toward a skill. Completed is monotonic.
type RoadmapStep struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SkillID string `gorm:"index;not null" json:"skillId"`
	Skill   Skill  `gorm:"constraint:OnDelete:CASCADE" json:"skill,omitempty"`

	Description string `gorm:"not null" json:"description"`
	Completed   bool   `gorm:"default:false" json:"completed"`
}

func (r *RoadmapStep) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
