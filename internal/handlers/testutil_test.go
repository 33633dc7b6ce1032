package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/config"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB(t *testing.T) {
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

	// The shared-cache memory DB survives between tests in one process;
	// start each test from a clean slate.
	for _, m := range []interface{}{
		&models.UserBadge{}, &models.Badge{}, &models.LearningSession{},
		&models.RoadmapStep{}, &models.DailyActivity{}, &models.Schedule{},
		&models.Task{}, &models.Skill{}, &models.Quote{}, &models.Video{},
		&models.Profile{}, &models.User{},
	} {
		database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m)
	}
	services.InvalidateLeaderboardCache()

	config.AppConfig = &config.Config{JWTSecret: "test_secret_key_12345"}
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context with an optional JSON body
func newTestContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	buf := &bytes.Buffer{}
	if body != nil {
		payload, _ := json.Marshal(body)
		buf = bytes.NewBuffer(payload)
	}

	c.Request, _ = http.NewRequest(method, target, buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

// createTestUser inserts a user with a zero-point student profile
func createTestUser(t *testing.T, username string) models.User {
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

	profile := models.Profile{UserID: user.ID, Role: models.RoleStudent}
	if err := database.DB.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return user
}

func createTestBadge(t *testing.T, name string, pointsRequired int) models.Badge {
	t.Helper()

	badge := models.Badge{ID: uuid.New().String(), Name: name, PointsRequired: pointsRequired}
	if err := database.DB.Create(&badge).Error; err != nil {
		t.Fatalf("Failed to create test badge: %v", err)
	}
	return badge
}

func profilePoints(t *testing.T, userID string) int {
	t.Helper()

	var profile models.Profile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	return profile.Points
}
