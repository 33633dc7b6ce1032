package services

import (
	"sync"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
)

// LeaderboardSize caps the public ranking at the top ten learners.
const LeaderboardSize = 10

type LeaderboardEntry struct {
	Rank      int         `json:"rank"`
	UserID    string      `json:"userId"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	AvatarURL string      `json:"avatarUrl"`
	Role      models.Role `json:"role"`
	Points    int         `json:"points"`
}

type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	lbCache *cachedLeaderboard
	lbMutex sync.RWMutex
	lbTTL   = 30 * time.Second
)

// InvalidateLeaderboardCache clears the cache; called after any point award.
func InvalidateLeaderboardCache() {
	lbMutex.Lock()
	defer lbMutex.Unlock()
	lbCache = nil
}

// GetLeaderboard returns the top profiles by points descending. Ties break
// on profile creation time, oldest first, which keeps the order stable
// between refreshes.
func GetLeaderboard() ([]LeaderboardEntry, error) {
	lbMutex.RLock()
	if lbCache != nil && time.Now().Before(lbCache.ExpiresAt) {
		entries := lbCache.Entries
		lbMutex.RUnlock()
		return entries, nil
	}
	lbMutex.RUnlock()

	var profiles []models.Profile
	if err := database.DB.Preload("User").
		Order("points DESC, created_at ASC").
		Limit(LeaderboardSize).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, LeaderboardEntry{
			Rank:      i + 1,
			UserID:    p.UserID,
			Username:  p.User.Username,
			Name:      p.User.Name,
			AvatarURL: p.AvatarURL,
			Role:      p.Role,
			Points:    p.Points,
		})
	}

	lbMutex.Lock()
	lbCache = &cachedLeaderboard{
		Entries:   entries,
		ExpiresAt: time.Now().Add(lbTTL),
	}
	lbMutex.Unlock()

	return entries, nil
}
