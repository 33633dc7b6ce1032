package services

import (
	"testing"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboard_EmptyAccount(t *testing.T) {
	setupTestDB(t)
	user := newTestUser(t, "empty_dash", 0)

	dash, err := GetDashboard(user.ID, time.Now())
	assert.NoError(t, err)

	assert.Empty(t, dash.Skills)
	assert.Empty(t, dash.Tasks)
	assert.Empty(t, dash.Schedules)
	assert.Empty(t, dash.Badges)
	assert.Empty(t, dash.Activities)
	assert.Nil(t, dash.Quote)
}

func TestGetDashboard_FiltersAndOrdering(t *testing.T) {
	setupTestDB(t)
	user := newTestUser(t, "full_dash", 0)
	other := newTestUser(t, "other_dash", 0)

	refDate, _ := time.Parse("2006-01-02", "2026-08-31")

	database.DB.Create(&models.Skill{UserID: user.ID, Name: "Go", Level: models.SkillLevelBeginner, Category: models.SkillCategoryProgramming})
	database.DB.Create(&models.Skill{UserID: other.ID, Name: "Not mine", Level: models.SkillLevelBeginner, Category: models.SkillCategoryProgramming})

	database.DB.Create(&models.Task{UserID: user.ID, Title: "Open task"})
	database.DB.Create(&models.Task{UserID: user.ID, Title: "Done task", Completed: true})

	// One past slot, two future ones out of insertion order
	database.DB.Create(&models.Schedule{UserID: user.ID, Date: "2026-08-30", Time: "09:00", Task: "yesterday"})
	database.DB.Create(&models.Schedule{UserID: user.ID, Date: "2026-09-02", Time: "08:00", Task: "later"})
	database.DB.Create(&models.Schedule{UserID: user.ID, Date: "2026-08-31", Time: "18:00", Task: "tonight"})
	database.DB.Create(&models.Schedule{UserID: user.ID, Date: "2026-08-31", Time: "07:30", Task: "this morning"})

	database.DB.Create(&models.DailyActivity{UserID: user.ID, Title: "Breakfast", Category: models.ActivityCategoryFood, Date: "2026-08-31"})
	database.DB.Create(&models.DailyActivity{UserID: user.ID, Title: "Old entry", Category: models.ActivityCategoryOther, Date: "2026-08-30"})

	dash, err := GetDashboard(user.ID, refDate)
	assert.NoError(t, err)

	assert.Len(t, dash.Skills, 1)
	assert.Len(t, dash.Tasks, 1)
	assert.Equal(t, "Open task", dash.Tasks[0].Title)

	assert.Len(t, dash.Schedules, 3)
	if len(dash.Schedules) == 3 {
		assert.Equal(t, "this morning", dash.Schedules[0].Task)
		assert.Equal(t, "tonight", dash.Schedules[1].Task)
		assert.Equal(t, "later", dash.Schedules[2].Task)
	}

	assert.Len(t, dash.Activities, 1)
	assert.Equal(t, "Breakfast", dash.Activities[0].Title)
}

func TestGetDashboard_QuoteWhenSeeded(t *testing.T) {
	setupTestDB(t)
	user := newTestUser(t, "quote_dash", 0)

	database.DB.Create(&models.Quote{Text: "Keep going.", Author: "Anonymous"})

	dash, err := GetDashboard(user.ID, time.Now())
	assert.NoError(t, err)
	assert.NotNil(t, dash.Quote)
	assert.Equal(t, "Keep going.", dash.Quote.Text)
}
