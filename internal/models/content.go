package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quote is static motivational content shown on the dashboard.
type Quote struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	Text   string `gorm:"not null" json:"text"`
	Author string `json:"author"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return
}

// Video is a curated motivational video link.
type Video struct {
	ID    string `gorm:"primaryKey;type:text" json:"id"`
	Title string `gorm:"not null" json:"title"`
	URL   string `gorm:"not null" json:"url"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}
