package handlers

import (
	"errors"
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoadmapStepInput struct {
	SkillID     string `json:"skillId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func ListRoadmapSteps(c *gin.Context) {
	userId, _ := c.Get("userId")

	var steps []models.RoadmapStep
	if err := database.DB.Preload("Skill").
		Where("user_id = ?", userId).
		Order("created_at asc").
		Find(&steps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roadmap"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

func CreateRoadmapStep(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input RoadmapStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The milestone must target one of the caller's own skills
	var skill models.Skill
	if err := database.DB.Where("id = ? AND user_id = ?", input.SkillID, userId).First(&skill).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	step := models.RoadmapStep{
		UserID:      userId.(string),
		SkillID:     input.SkillID,
		Description: input.Description,
	}

	if err := database.DB.Create(&step).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create roadmap step"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"step": step})
}

// CompleteRoadmapStep marks a milestone done for 20 points. Same monotonic
// rule as tasks: re-completing is a no-op.
func CompleteRoadmapStep(c *gin.Context) {
	userId, _ := c.Get("userId")
	stepID := c.Param("id")

	var step models.RoadmapStep
	if err := database.DB.Where("id = ? AND user_id = ?", stepID, userId).First(&step).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap step not found"})
		return
	}

	if step.Completed {
		c.JSON(http.StatusOK, gin.H{
			"step":         step,
			"pointsEarned": 0,
			"alreadyDone":  true,
		})
		return
	}

	var award *services.AwardResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		flip := tx.Model(&models.RoadmapStep{}).
			Where("id = ? AND user_id = ? AND completed = ?", stepID, userId, false).
			Update("completed", true)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return nil
		}

		var txErr error
		award, txErr = services.AwardPointsTx(tx, userId.(string), services.PointsRoadmapStep)
		return txErr
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error().Err(err).Str("step_id", stepID).Msg("Failed to complete roadmap step")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete roadmap step"})
		return
	}

	step.Completed = true

	if award == nil {
		c.JSON(http.StatusOK, gin.H{
			"step":         step,
			"pointsEarned": 0,
			"alreadyDone":  true,
		})
		return
	}

	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"step":         step,
		"pointsEarned": services.PointsRoadmapStep,
		"totalPoints":  award.Total,
		"newBadges":    award.NewBadges,
	})
}
