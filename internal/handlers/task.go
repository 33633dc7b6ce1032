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

type TaskInput struct {
	Title    string              `json:"title" binding:"required"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *string             `json:"dueDate"` // YYYY-MM-DD
}

func ListTasks(c *gin.Context) {
	userId, _ := c.Get("userId")

	var tasks []models.Task
	if err := database.DB.Where("user_id = ?", userId).Order("created_at desc").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func CreateTask(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !models.IsValidTaskPriority(input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Priority must be one of: high, medium, low"})
		return
	}
	if input.DueDate != nil {
		if _, err := time.Parse("2006-01-02", *input.DueDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Due date must be formatted as YYYY-MM-DD"})
			return
		}
	}

	task := models.Task{
		UserID:   userId.(string),
		Title:    input.Title,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// CompleteTask marks a task done and credits its points. Completion is
// monotonic: a second call is a no-op and never awards a second time.
func CompleteTask(c *gin.Context) {
	userId, _ := c.Get("userId")
	taskID := c.Param("id")

	var task models.Task
	if err := database.DB.Where("id = ? AND user_id = ?", taskID, userId).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if task.Completed {
		c.JSON(http.StatusOK, gin.H{
			"task":         task,
			"pointsEarned": 0,
			"alreadyDone":  true,
		})
		return
	}

	var award *services.AwardResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Flip the flag only if it is still unset, so a racing duplicate
		// request cannot double-award.
		flip := tx.Model(&models.Task{}).
			Where("id = ? AND user_id = ? AND completed = ?", taskID, userId, false).
			Update("completed", true)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return nil // already completed elsewhere; nothing to award
		}

		var txErr error
		award, txErr = services.AwardPointsTx(tx, userId.(string), services.PointsTaskCompleted)
		return txErr
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error().Err(err).Str("task_id", taskID).Msg("Failed to complete task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	task.Completed = true

	if award == nil {
		c.JSON(http.StatusOK, gin.H{
			"task":         task,
			"pointsEarned": 0,
			"alreadyDone":  true,
		})
		return
	}

	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"task":         task,
		"pointsEarned": services.PointsTaskCompleted,
		"totalPoints":  award.Total,
		"newBadges":    award.NewBadges,
	})
}
