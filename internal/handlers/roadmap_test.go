package handlers

import (
	"net/http"
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompleteRoadmapStep_AwardsTwentyPointsOnce(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "roadmap_user")

	skill := models.Skill{UserID: user.ID, Name: "Rust", Level: models.SkillLevelBeginner, Category: models.SkillCategoryProgramming}
	database.DB.Create(&skill)

	step := models.RoadmapStep{UserID: user.ID, SkillID: skill.ID, Description: "Finish the book"}
	database.DB.Create(&step)

	c, w := newTestContext("POST", "/api/roadmap/"+step.ID+"/complete", nil)
	c.Set("userId", user.ID)
	c.Params = gin.Params{{Key: "id", Value: step.ID}}

	CompleteRoadmapStep(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, profilePoints(t, user.ID))

	// Re-completing stays a no-op
	c2, w2 := newTestContext("POST", "/api/roadmap/"+step.ID+"/complete", nil)
	c2.Set("userId", user.ID)
	c2.Params = gin.Params{{Key: "id", Value: step.ID}}

	CompleteRoadmapStep(c2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 20, profilePoints(t, user.ID))
}

func TestCreateRoadmapStep_RequiresOwnedSkill(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "roadmap_owner")
	intruder := createTestUser(t, "roadmap_intruder")

	skill := models.Skill{UserID: owner.ID, Name: "Piano", Level: models.SkillLevelBeginner, Category: models.SkillCategorySoftSkills}
	database.DB.Create(&skill)

	c, w := newTestContext("POST", "/api/roadmap", map[string]interface{}{
		"skillId":     skill.ID,
		"description": "Learn scales",
	})
	c.Set("userId", intruder.ID)

	CreateRoadmapStep(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	database.DB.Model(&models.RoadmapStep{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
