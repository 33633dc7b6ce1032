package main

import (
	"log"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/config"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Ensuring schema is up to date...")
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
		log.Fatalf("Migration failed: %v", err)
	}

	seeds.SeedBadges()
	seeds.SeedQuotes()
	seeds.SeedVideos()
	seeds.SeedDemoUser()

	log.Println("✅ Seeding complete")
}
