package handlers

import (
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// GetMotivation lists all curated quotes and videos.
func GetMotivation(c *gin.Context) {
	quotes := []models.Quote{}
	videos := []models.Video{}

	if err := database.DB.Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}
	if err := database.DB.Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quotes": quotes,
		"videos": videos,
	})
}
