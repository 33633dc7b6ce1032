package services

import (
	"errors"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"gorm.io/gorm"
)

// Point value per triggering action
const (
	PointsTaskCompleted    = 10
	PointsRoadmapStep      = 20
	PointsDailyActivity    = 5
	PointsPerSessionMinute = 2
)

var ErrProfileNotFound = errors.New("profile not found")

// AwardResult is the outcome of a point credit: the new total and any
// badges unlocked by crossing their thresholds.
type AwardResult struct {
	Total     int            `json:"totalPoints"`
	NewBadges []models.Badge `json:"newBadges"`
}

// AwardPoints credits delta points to the user's profile and re-evaluates
// badge unlocks, all in one transaction. Either both the new total and any
// new awards commit, or neither does.
func AwardPoints(userID string, delta int) (*AwardResult, error) {
	var res *AwardResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		res, txErr = AwardPointsTx(tx, userID, delta)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	InvalidateLeaderboardCache()
	return res, nil
}

// AwardPointsTx is the transactional body of AwardPoints. Callers that need
// additional writes to be atomic with the credit (session recording) run it
// inside their own transaction.
//
// The increment happens in the database, so two racing requests for the
// same profile cannot lose an update.
func AwardPointsTx(tx *gorm.DB, userID string, delta int) (*AwardResult, error) {
	update := tx.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("points", gorm.Expr("points + ?", delta))
	if update.Error != nil {
		return nil, update.Error
	}
	if update.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	newBadges, err := evaluateBadgesTx(tx, userID, profile.Points)
	if err != nil {
		return nil, err
	}

	return &AwardResult{Total: profile.Points, NewBadges: newBadges}, nil
}

// EvaluateBadges re-checks badge eligibility against the user's current
// total without changing it. Idempotent: a second call with an unchanged
// total awards nothing.
func EvaluateBadges(userID string) ([]models.Badge, error) {
	var newBadges []models.Badge
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		var txErr error
		newBadges, txErr = evaluateBadgesTx(tx, userID, profile.Points)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return newBadges, nil
}

// evaluateBadgesTx awards every badge whose threshold the total has reached
// and that the user does not already own. All eligible badges are checked;
// evaluation order never affects the resulting award set.
func evaluateBadgesTx(tx *gorm.DB, userID string, total int) ([]models.Badge, error) {
	var ownedIDs []string
	if err := tx.Model(&models.UserBadge{}).Where("user_id = ?", userID).Pluck("badge_id", &ownedIDs).Error; err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(ownedIDs))
	for _, id := range ownedIDs {
		owned[id] = true
	}

	var definitions []models.Badge
	if err := tx.Find(&definitions).Error; err != nil {
		return nil, err
	}

	var newBadges []models.Badge
	for _, badge := range definitions {
		if owned[badge.ID] {
			continue
		}
		if total < badge.PointsRequired {
			continue
		}

		award := models.UserBadge{
			UserID:   userID,
			BadgeID:  badge.ID,
			EarnedAt: time.Now(),
		}
		if err := tx.Create(&award).Error; err != nil {
			return nil, err
		}
		newBadges = append(newBadges, badge)
	}

	return newBadges, nil
}
