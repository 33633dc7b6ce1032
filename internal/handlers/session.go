package handlers

import (
	"errors"
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/logger"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecordSessionInput struct {
	Duration int     `json:"duration"` // minutes, must be positive
	SkillID  *string `json:"skillId"`
	Notes    string  `json:"notes"`
}

// RecordSession converts a finished Pomodoro interval into a persisted
// LearningSession worth 2 points per minute. Session insert, point credit,
// and badge re-check run in one transaction, so a failure anywhere leaves
// nothing behind.
func RecordSession(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input RecordSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be a positive number of minutes"})
		return
	}

	if input.SkillID != nil {
		var skill models.Skill
		if err := database.DB.Where("id = ? AND user_id = ?", *input.SkillID, userId).First(&skill).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
	}

	pointsEarned := input.Duration * services.PointsPerSessionMinute

	session := models.LearningSession{
		UserID:          userId.(string),
		SkillID:         input.SkillID,
		DurationMinutes: input.Duration,
		Notes:           utils.NormalizeNotes(input.Notes),
	}

	var award *services.AwardResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		var txErr error
		award, txErr = services.AwardPointsTx(tx, userId.(string), pointsEarned)
		return txErr
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error().Err(err).Str("user_id", userId.(string)).Msg("Failed to record session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record session"})
		return
	}

	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"session":       session,
		"points_earned": pointsEarned,
		"total_points":  award.Total,
		"new_badges":    award.NewBadges,
	})
}

// ListSessions returns the caller's session history, newest first.
func ListSessions(c *gin.Context) {
	userId, _ := c.Get("userId")

	var sessions []models.LearningSession
	if err := database.DB.Preload("Skill").
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
