package handlers

import (
	"net/http"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

type SkillInput struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Level       models.SkillLevel    `json:"level"`
	Progress    *int                 `json:"progress"`
	Category    models.SkillCategory `json:"category"`
}

func validateSkillInput(input *SkillInput) string {
	if input.Level == "" {
		input.Level = models.SkillLevelBeginner
	}
	if !models.IsValidSkillLevel(input.Level) {
		return "Level must be one of: beginner, intermediate, advanced"
	}
	if input.Category == "" {
		input.Category = models.SkillCategoryProgramming
	}
	if !models.IsValidSkillCategory(input.Category) {
		return "Category must be one of: programming, soft_skills, management"
	}
	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return "Progress must be between 0 and 100"
	}
	return ""
}

func ListSkills(c *gin.Context) {
	userId, _ := c.Get("userId")

	var skills []models.Skill
	if err := database.DB.Where("user_id = ?", userId).Order("created_at asc").Find(&skills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func CreateSkill(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateSkillInput(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	skill := models.Skill{
		UserID:      userId.(string),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Level:       input.Level,
		Category:    input.Category,
	}
	if input.Progress != nil {
		skill.Progress = *input.Progress
	}

	if err := database.DB.Create(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"skill": skill})
}

func UpdateSkill(c *gin.Context) {
	userId, _ := c.Get("userId")
	skillID := c.Param("id")

	var skill models.Skill
	if err := database.DB.Where("id = ? AND user_id = ?", skillID, userId).First(&skill).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	var input SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateSkillInput(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	skill.Name = input.Name
	skill.Description = input.Description
	skill.Icon = input.Icon
	skill.Level = input.Level
	skill.Category = input.Category
	if input.Progress != nil {
		skill.Progress = *input.Progress
	}

	if err := database.DB.Save(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skill": skill})
}

func DeleteSkill(c *gin.Context) {
	userId, _ := c.Get("userId")
	skillID := c.Param("id")

	result := database.DB.Where("id = ? AND user_id = ?", skillID, userId).Delete(&models.Skill{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
