package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillLevel string
type SkillCategory string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"

	SkillCategoryProgramming SkillCategory = "programming"
	SkillCategorySoftSkills  SkillCategory = "soft_skills"
	SkillCategoryManagement  SkillCategory = "management"
)

func IsValidSkillLevel(l SkillLevel) bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return true
	}
	return false
}

func IsValidSkillCategory(c SkillCategory) bool {
	switch c {
	case SkillCategoryProgramming, SkillCategorySoftSkills, SkillCategoryManagement:
		return true
	}
	return false
}

// Skill is a trackable competency. UserID is mandatory: every read and
// write goes through an ownership filter.
type Skill struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Level       SkillLevel    `gorm:"type:text;default:'beginner'" json:"level"`
	Progress    int           `gorm:"default:0" json:"progress"` // 0-100
	Category    SkillCategory `gorm:"type:text" json:"category"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
