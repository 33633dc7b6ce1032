package seeds

import (
	"log"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"github.com/google/uuid"
)

func SeedBadges() {
	log.Println("🎖️ Seeding Badges...")

	badges := []models.Badge{
		{
			Name:           "First Steps",
			Description:    "Earned your first points. The journey begins.",
			Icon:           "footprints",
			PointsRequired: 10,
		},
		{
			Name:           "Focused Learner",
			Description:    "Reached 50 points. One solid Pomodoro will do it.",
			Icon:           "timer",
			PointsRequired: 50,
		},
		{
			Name:           "Century Club",
			Description:    "Crossed 100 points.",
			Icon:           "award",
			PointsRequired: 100,
		},
		{
			Name:           "Consistent Performer",
			Description:    "Reached 250 points through steady practice.",
			Icon:           "flame",
			PointsRequired: 250,
		},
		{
			Name:           "Dedicated Student",
			Description:    "500 points. Learning is a habit now.",
			Icon:           "book-open",
			PointsRequired: 500,
		},
		{
			Name:           "Knowledge Seeker",
			Description:    "1000 points of tracked effort.",
			Icon:           "graduation-cap",
			PointsRequired: 1000,
		},
		{
			Name:           "Master Learner",
			Description:    "2500 points. A true self-learning master.",
			Icon:           "crown",
			PointsRequired: 2500,
		},
	}

	for _, b := range badges {
		var existing models.Badge
		if err := database.DB.Where("name = ?", b.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Badge already exists: %s", b.Name)
			continue
		}

		b.ID = uuid.New().String()
		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("   ❌ Failed to create badge %s: %v", b.Name, err)
		} else {
			log.Printf("   🎖️ Badge Defined: %s (%d pts)", b.Name, b.PointsRequired)
		}
	}
}
