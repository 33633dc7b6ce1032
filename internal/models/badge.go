package models

import "time"

// Badge is an unlockable achievement definition. Seeded once; immutable
// after any award references it.
type Badge struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Name of the Lucide icon
	// Point total the user must reach for the badge to unlock
	PointsRequired int `gorm:"not null" json:"pointsRequired"`
}

// UserBadge records that a user earned a badge. The composite key keeps
// awards unique per (user, badge) pair.
type UserBadge struct {
	UserID   string    `gorm:"primaryKey;type:text" json:"userId"`
	BadgeID  string    `gorm:"primaryKey;type:text" json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE" json:"badge"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
