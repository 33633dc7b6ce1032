package handlers

import (
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the caller's user record with tracker profile.
func GetProfile(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.Preload("Profile").First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileInput struct {
	Bio       *string      `json:"bio"`
	Role      *models.Role `json:"role"`
	AvatarURL *string      `json:"avatarUrl"`
}

// UpdateProfile edits bio, role, and avatar. Points are not writable here;
// only the accrual engine changes them.
func UpdateProfile(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Role != nil && !models.IsValidRole(*input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be one of: student, mentor, professional"})
		return
	}

	var profile models.Profile
	if err := database.DB.Where("user_id = ?", userId).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Role != nil {
		profile.Role = *input.Role
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
