package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DailyActivityInput struct {
	Title     string                  `json:"title" binding:"required"`
	Category  models.ActivityCategory `json:"category"`
	TimeOfDay string                  `json:"timeOfDay"`
	Date      string                  `json:"date"` // YYYY-MM-DD, defaults to today
}

// ListActivities returns the caller's activities for one day
// (?date=YYYY-MM-DD, default today).
func ListActivities(c *gin.Context) {
	userId, _ := c.Get("userId")

	day := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
		return
	}

	var activities []models.DailyActivity
	if err := database.DB.Where("user_id = ? AND date = ?", userId, day).
		Order("created_at asc").
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// CreateActivity logs a daily habit entry and awards 5 points. The award
// happens on creation; marking the entry complete later earns nothing.
func CreateActivity(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input DailyActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Category == "" {
		input.Category = models.ActivityCategoryOther
	}
	if !models.IsValidActivityCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: food, personal_care, other"})
		return
	}
	if input.Date != "" {
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
			return
		}
	}

	activity := models.DailyActivity{
		UserID:    userId.(string),
		Title:     input.Title,
		Category:  input.Category,
		TimeOfDay: input.TimeOfDay,
		Date:      input.Date,
	}

	var award *services.AwardResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
		var txErr error
		award, txErr = services.AwardPointsTx(tx, userId.(string), services.PointsDailyActivity)
		return txErr
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error().Err(err).Str("user_id", userId.(string)).Msg("Failed to log activity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log activity"})
		return
	}

	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusCreated, gin.H{
		"activity":     activity,
		"pointsEarned": services.PointsDailyActivity,
		"totalPoints":  award.Total,
		"newBadges":    award.NewBadges,
	})
}

// CompleteActivity ticks the entry off. No points here.
func CompleteActivity(c *gin.Context) {
	userId, _ := c.Get("userId")
	activityID := c.Param("id")

	var activity models.DailyActivity
	if err := database.DB.Where("id = ? AND user_id = ?", activityID, userId).First(&activity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if !activity.IsCompleted {
		if err := database.DB.Model(&activity).Update("is_completed", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
			return
		}
		activity.IsCompleted = true
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}
