package seeds

import (
	"log"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoUser creates one demo account for local development.
func SeedDemoUser() {
	log.Println("👤 Seeding Demo User...")

	var existing models.User
	if err := database.DB.Where("email = ?", "demo@selflearn.local").First(&existing).Error; err == nil {
		log.Println("   ℹ️ Demo user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("   ❌ Failed to hash demo password: %v", err)
		return
	}

	user := models.User{
		Name:     "Demo Learner",
		Email:    "demo@selflearn.local",
		Username: "demo_learner",
		Password: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("   ❌ Failed to create demo user: %v", err)
		return
	}

	profile := models.Profile{
		UserID: user.ID,
		Role:   models.RoleStudent,
		Bio:    "Just here to learn.",
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		log.Printf("   ❌ Failed to create demo profile: %v", err)
		return
	}

	log.Println("   👤 Demo user created (demo@selflearn.local / Demo1234)")
}
