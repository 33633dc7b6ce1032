package handlers

import (
	"net/http"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

type ScheduleInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM
	Task string `json:"task" binding:"required"`
}

// ListSchedules returns the caller's upcoming slots, soonest first.
func ListSchedules(c *gin.Context) {
	userId, _ := c.Get("userId")

	today := time.Now().Format("2006-01-02")

	var schedules []models.Schedule
	if err := database.DB.
		Where("user_id = ? AND date >= ?", userId, today).
		Order("date asc, time asc").
		Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func CreateSchedule(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Time must be formatted as HH:MM"})
		return
	}

	schedule := models.Schedule{
		UserID: userId.(string),
		Date:   input.Date,
		Time:   input.Time,
		Task:   input.Task,
	}

	if err := database.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}
