package handlers

import (
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/logger"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the public top ten learners by points.
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
