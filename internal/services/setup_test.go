package services

import (
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite DB for testing
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	database.DB = db

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Task{},
		&models.Schedule{},
		&models.LearningSession{},
		&models.RoadmapStep{},
		&models.DailyActivity{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Quote{},
		&models.Video{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	// Shared-cache memory DB persists between tests in one process
	for _, m := range []interface{}{
		&models.UserBadge{}, &models.Badge{}, &models.LearningSession{},
		&models.RoadmapStep{}, &models.DailyActivity{}, &models.Schedule{},
		&models.Task{}, &models.Skill{}, &models.Quote{}, &models.Video{},
		&models.Profile{}, &models.User{},
	} {
		database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m)
	}
	InvalidateLeaderboardCache()
}

func newTestUser(t *testing.T, username string, points int) models.User {
	t.Helper()

	user := models.User{
		Name:     username,
		Email:    username + "@example.com",
		Username: username,
		Password: "irrelevant",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	profile := models.Profile{UserID: user.ID, Role: models.RoleStudent, Points: points}
	if err := database.DB.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return user
}

func newTestBadge(t *testing.T, name string, pointsRequired int) models.Badge {
	t.Helper()

	badge := models.Badge{ID: uuid.New().String(), Name: name, PointsRequired: pointsRequired}
	if err := database.DB.Create(&badge).Error; err != nil {
		t.Fatalf("Failed to create test badge: %v", err)
	}
	return badge
}
