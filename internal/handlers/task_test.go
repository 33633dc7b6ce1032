package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompleteTask_AwardsTenPointsOnce(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "task_user")

	task := models.Task{UserID: user.ID, Title: "Read chapter 3", Priority: models.TaskPriorityMedium}
	database.DB.Create(&task)

	c, w := newTestContext("POST", "/api/tasks/"+task.ID+"/complete", nil)
	c.Set("userId", user.ID)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	CompleteTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, profilePoints(t, user.ID))

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(10), resp["pointsEarned"])
	assert.Equal(t, float64(10), resp["totalPoints"])

	// Second completion is a no-op: flag stays true, no second award
	c2, w2 := newTestContext("POST", "/api/tasks/"+task.ID+"/complete", nil)
	c2.Set("userId", user.ID)
	c2.Params = gin.Params{{Key: "id", Value: task.ID}}

	CompleteTask(c2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 10, profilePoints(t, user.ID))

	var resp2 map[string]interface{}
	json.Unmarshal(w2.Body.Bytes(), &resp2)
	assert.Equal(t, float64(0), resp2["pointsEarned"])
	assert.Equal(t, true, resp2["alreadyDone"])

	var reloaded models.Task
	database.DB.First(&reloaded, "id = ?", task.ID)
	assert.True(t, reloaded.Completed)
}

func TestCompleteTask_NotFoundForOtherUser(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "task_owner")
	intruder := createTestUser(t, "task_intruder")

	task := models.Task{UserID: owner.ID, Title: "Private task"}
	database.DB.Create(&task)

	c, w := newTestContext("POST", "/api/tasks/"+task.ID+"/complete", nil)
	c.Set("userId", intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	CompleteTask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, profilePoints(t, intruder.ID))

	var reloaded models.Task
	database.DB.First(&reloaded, "id = ?", task.ID)
	assert.False(t, reloaded.Completed)
}

func TestCreateTask_ValidatesPriorityAndDueDate(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "task_validator")

	c, w := newTestContext("POST", "/api/tasks", map[string]interface{}{
		"title":    "Bad priority",
		"priority": "urgent",
	})
	c.Set("userId", user.ID)
	CreateTask(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c2, w2 := newTestContext("POST", "/api/tasks", map[string]interface{}{
		"title":   "Bad date",
		"dueDate": "31-12-2026",
	})
	c2.Set("userId", user.ID)
	CreateTask(c2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	c3, w3 := newTestContext("POST", "/api/tasks", map[string]interface{}{
		"title":   "Fine",
		"dueDate": "2026-12-31",
	})
	c3.Set("userId", user.ID)
	CreateTask(c3)
	assert.Equal(t, http.StatusCreated, w3.Code)
}
