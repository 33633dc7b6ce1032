package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityCategory string

const (
	ActivityCategoryFood         ActivityCategory = "food"
	ActivityCategoryPersonalCare ActivityCategory = "personal_care"
	ActivityCategoryOther        ActivityCategory = "other"
)

func IsValidActivityCategory(c ActivityCategory) bool {
	switch c {
	case ActivityCategoryFood, ActivityCategoryPersonalCare, ActivityCategoryOther:
		return true
	}
	return false
}

// DailyActivity is one logged habit entry for a given day. Points are
// awarded when the entry is created, not when it is marked complete.
type DailyActivity struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title       string           `gorm:"not null" json:"title"`
	Category    ActivityCategory `gorm:"type:text;default:'other'" json:"category"`
	TimeOfDay   string           `json:"timeOfDay"` // HH:MM, optional
	IsCompleted bool             `gorm:"default:false" json:"isCompleted"`
	Date        string           `gorm:"index;not null" json:"date"` // YYYY-MM-DD
}

func (a *DailyActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Date == "" {
		a.Date = time.Now().Format("2006-01-02")
	}
	return
}
