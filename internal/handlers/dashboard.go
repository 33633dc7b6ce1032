package handlers

import (
	"net/http"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/CERO-100/Self-Leaning-Tracker/pkg/logger"
	"github.com/gin-gonic/gin"
)

// GetDashboard serves the landing view snapshot. ?date=YYYY-MM-DD overrides
// the reference date, mainly for clients in other timezones.
func GetDashboard(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	refDate := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
			return
		}
		refDate = parsed
	}

	dash, err := services.GetDashboard(userId.(string), refDate)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userId.(string)).Msg("Failed to build dashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dash)
}
