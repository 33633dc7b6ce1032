package routes

import (
	"github.com/CERO-100/Self-Leaning-Tracker/internal/handlers"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.PUT("", handlers.UpdateProfile)
		profile.POST("/avatar", handlers.UploadAvatar)
	}

	// Public
	r.GET("/leaderboard", handlers.GetLeaderboard)
}
