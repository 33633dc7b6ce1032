package services

import (
	"errors"
	"time"

	"github.com/CERO-100/Self-Leaning-Tracker/internal/database"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/models"
	"gorm.io/gorm"
)

// Dashboard is the read-only snapshot behind the landing view: everything
// a user sees after login, composed for a single reference date.
type Dashboard struct {
	Skills     []models.Skill         `json:"skills"`
	Tasks      []models.Task          `json:"tasks"`
	Schedules  []models.Schedule      `json:"schedules"`
	Badges     []models.UserBadge     `json:"badges"`
	Quote      *models.Quote          `json:"quote"`
	Activities []models.DailyActivity `json:"activities"`
}

// GetDashboard aggregates the user's current state as of refDate. Accounts
// with no data get empty collections, not an error. The quote is picked
// uniformly at random and may differ between calls; an empty quote table
// just means no quote.
func GetDashboard(userID string, refDate time.Time) (*Dashboard, error) {
	day := refDate.Format("2006-01-02")

	dash := &Dashboard{
		Skills:     []models.Skill{},
		Tasks:      []models.Task{},
		Schedules:  []models.Schedule{},
		Badges:     []models.UserBadge{},
		Activities: []models.DailyActivity{},
	}

	if err := database.DB.Where("user_id = ?", userID).Find(&dash.Skills).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Where("user_id = ? AND completed = ?", userID, false).Find(&dash.Tasks).Error; err != nil {
		return nil, err
	}

	if err := database.DB.
		Where("user_id = ? AND date >= ?", userID, day).
		Order("date asc, time asc").
		Find(&dash.Schedules).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Preload("Badge").Where("user_id = ?", userID).Find(&dash.Badges).Error; err != nil {
		return nil, err
	}

	var quote models.Quote
	if err := database.DB.Order("RANDOM()").First(&quote).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No quotes seeded yet; the dashboard simply shows none.
	} else {
		dash.Quote = &quote
	}

	if err := database.DB.Where("user_id = ? AND date = ?", userID, day).Find(&dash.Activities).Error; err != nil {
		return nil, err
	}

	return dash, nil
}
