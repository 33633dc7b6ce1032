package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a planned study slot. Date and Time are stored as sortable
// strings (YYYY-MM-DD / HH:MM) so ordering works identically on Postgres
// and the SQLite test database.
type Schedule struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Date string `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"not null" json:"time"` // HH:MM
	Task string `gorm:"not null" json:"task"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
