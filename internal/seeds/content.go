package seeds

import (
	"log"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
)

func SeedQuotes() {
	log.Println("💬 Seeding Quotes...")

	quotes := []models.Quote{
		{Text: "The beautiful thing about learning is that nobody can take it away from you.", Author: "B.B. King"},
		{Text: "Live as if you were to die tomorrow. Learn as if you were to live forever.", Author: "Mahatma Gandhi"},
		{Text: "An investment in knowledge pays the best interest.", Author: "Benjamin Franklin"},
		{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
		{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes"},
		{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	}

	for _, q := range quotes {
		var existing models.Quote
		if err := database.DB.Where("text = ?", q.Text).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&q).Error; err != nil {
			log.Printf("   ❌ Failed to create quote: %v", err)
		}
	}
}

func SeedVideos() {
	log.Println("🎬 Seeding Videos...")

	videos := []models.Video{
		{Title: "How to Learn Anything Fast", URL: "https://www.youtube.com/watch?v=5MgBikgcWnY"},
		{Title: "The Power of Deliberate Practice", URL: "https://www.youtube.com/watch?v=uoUHlZP094Q"},
		{Title: "Inside the Mind of a Master Procrastinator", URL: "https://www.youtube.com/watch?v=arj7oStGLkU"},
		{Title: "The First 20 Hours — How to Learn Anything", URL: "https://www.youtube.com/watch?v=5MgBikgcWnY"},
	}

	for _, v := range videos {
		var existing models.Video
		if err := database.DB.Where("title = ?", v.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&v).Error; err != nil {
			log.Printf("   ❌ Failed to create video: %v", err)
		}
	}
}
