package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecordSession_AwardsTwoPointsPerMinute(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "pomo_user")

	c, w := newTestContext("POST", "/api/sessions", map[string]interface{}{
		"duration": 25,
		"notes":    "focused work",
	})
	c.Set("userId", user.ID)

	RecordSession(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(50), resp["points_earned"])
	assert.Equal(t, float64(50), resp["total_points"])

	var count int64
	database.DB.Model(&models.LearningSession{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, 50, profilePoints(t, user.ID))
}

func TestRecordSession_RejectsNonPositiveDuration(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "pomo_zero")

	for _, duration := range []int{0, -5} {
		c, w := newTestContext("POST", "/api/sessions", map[string]interface{}{
			"duration": duration,
		})
		c.Set("userId", user.ID)

		RecordSession(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	database.DB.Model(&models.LearningSession{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 0, profilePoints(t, user.ID))
}

func TestRecordSession_RejectsForeignSkill(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "skill_owner")
	intruder := createTestUser(t, "skill_intruder")

	skill := models.Skill{UserID: owner.ID, Name: "Go", Level: models.SkillLevelBeginner, Category: models.SkillCategoryProgramming}
	database.DB.Create(&skill)

	c, w := newTestContext("POST", "/api/sessions", map[string]interface{}{
		"duration": 25,
		"skillId":  skill.ID,
	})
	c.Set("userId", intruder.ID)

	RecordSession(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	database.DB.Model(&models.LearningSession{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 0, profilePoints(t, intruder.ID))
}

func TestRecordSession_UnlocksBadgeAtThreshold(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "badge_hunter")
	fifty := createTestBadge(t, "Focused Learner", 50)
	createTestBadge(t, "Century Club", 100)

	// 25 minutes -> 50 points -> the 50-point badge unlocks now, not before
	c, w := newTestContext("POST", "/api/sessions", map[string]interface{}{
		"duration": 25,
	})
	c.Set("userId", user.ID)

	RecordSession(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var awards []models.UserBadge
	database.DB.Where("user_id = ?", user.ID).Find(&awards)
	assert.Len(t, awards, 1)
	if len(awards) == 1 {
		assert.Equal(t, fifty.ID, awards[0].BadgeID)
	}
}
