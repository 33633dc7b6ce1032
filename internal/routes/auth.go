package routes

import (
	"github.com/CERO-100/Self-Leaning-Tracker/internal/handlers"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
}
