package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent      Role = "student"
	RoleMentor       Role = "mentor"
	RoleProfessional Role = "professional"
)

// IsValidRole reports whether r is one of the closed set of tracker roles
func IsValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleMentor, RoleProfessional:
		return true
	}
	return false
}

// Profile holds the per-user tracker state. Exactly one per user,
// created at registration, removed with the user.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"uniqueIndex;not null" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Role      Role   `gorm:"type:text;default:'student'" json:"role"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`

	// Point total. Only ever incremented; badge thresholds compare against it.
	Points int `gorm:"default:0" json:"points"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
