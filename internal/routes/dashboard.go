package routes

import (
	"github.com/CERO-100/Self-Leaning-Tracker/internal/handlers"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(r gin.IRouter) {
	r.GET("/dashboard", middleware.AuthMiddleware(), handlers.GetDashboard)
	r.GET("/motivation", middleware.AuthMiddleware(), handlers.GetMotivation)
}
