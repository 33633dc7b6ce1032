package handlers

import (
	"net/http"
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateSkill_ValidatesLevelAndProgress(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "skill_creator")

	c, w := newTestContext("POST", "/api/skills", map[string]interface{}{
		"name":  "Go",
		"level": "expert",
	})
	c.Set("userId", user.ID)
	CreateSkill(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c2, w2 := newTestContext("POST", "/api/skills", map[string]interface{}{
		"name":     "Go",
		"level":    "intermediate",
		"progress": 150,
	})
	c2.Set("userId", user.ID)
	CreateSkill(c2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	c3, w3 := newTestContext("POST", "/api/skills", map[string]interface{}{
		"name":     "Go",
		"level":    "intermediate",
		"progress": 40,
		"category": "programming",
	})
	c3.Set("userId", user.ID)
	CreateSkill(c3)
	assert.Equal(t, http.StatusCreated, w3.Code)
}

func TestUpdateSkill_OwnershipEnforced(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "skill_owner2")
	intruder := createTestUser(t, "skill_intruder2")

	skill := models.Skill{UserID: owner.ID, Name: "SQL", Level: models.SkillLevelBeginner, Category: models.SkillCategoryProgramming}
	database.DB.Create(&skill)

	c, w := newTestContext("PUT", "/api/skills/"+skill.ID, map[string]interface{}{
		"name": "Hijacked",
	})
	c.Set("userId", intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: skill.ID}}

	UpdateSkill(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var reloaded models.Skill
	database.DB.First(&reloaded, "id = ?", skill.ID)
	assert.Equal(t, "SQL", reloaded.Name)
}

func TestDeleteSkill_RemovesOwnedSkill(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "skill_deleter")

	skill := models.Skill{UserID: user.ID, Name: "Old skill", Level: models.SkillLevelBeginner, Category: models.SkillCategoryManagement}
	database.DB.Create(&skill)

	c, w := newTestContext("DELETE", "/api/skills/"+skill.ID, nil)
	c.Set("userId", user.ID)
	c.Params = gin.Params{{Key: "id", Value: skill.ID}}

	DeleteSkill(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Skill{}).Where("id = ?", skill.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
