package routes

import (
	"github.com/CERO-100/Self-Leaning-Tracker/internal/handlers"
	"github.com/CERO-100/Self-Leaning-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterTrackerRoutes wires every authenticated tracker resource:
// skills, tasks, schedules, Pomodoro sessions, roadmap steps, and daily
// activities.
func RegisterTrackerRoutes(r gin.IRouter) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		skills := authed.Group("/skills")
		{
			skills.GET("", handlers.ListSkills)
			skills.POST("", handlers.CreateSkill)
			skills.PUT("/:id", handlers.UpdateSkill)
			skills.DELETE("/:id", handlers.DeleteSkill)
		}

		tasks := authed.Group("/tasks")
		{
			tasks.GET("", handlers.ListTasks)
			tasks.POST("", handlers.CreateTask)
			tasks.POST("/:id/complete", handlers.CompleteTask)
		}

		schedules := authed.Group("/schedules")
		{
			schedules.GET("", handlers.ListSchedules)
			schedules.POST("", handlers.CreateSchedule)
		}

		sessions := authed.Group("/sessions")
		{
			sessions.GET("", handlers.ListSessions)
			sessions.POST("", middleware.SessionRateLimit(), handlers.RecordSession)
		}

		roadmap := authed.Group("/roadmap")
		{
			roadmap.GET("", handlers.ListRoadmapSteps)
			roadmap.POST("", handlers.CreateRoadmapStep)
			roadmap.POST("/:id/complete", handlers.CompleteRoadmapStep)
		}

		activities := authed.Group("/activities")
		{
			activities.GET("", handlers.ListActivities)
			activities.POST("", handlers.CreateActivity)
			activities.POST("/:id/complete", handlers.CompleteActivity)
		}
	}
}
