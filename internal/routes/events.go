package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterEventRoutes(r gin.IRouter) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware())
	{
		events.POST("", handlers.CreateEvent)
		events.GET("", handlers.ListEvents)
		events.GET("/:id", handlers.GetEvent)
		events.POST("/:id/attendees", handlers.AddAttendee)
		events.POST("/:id/plan", middleware.AIRateLimit(), handlers.GenerateEventPlan)
		events.PATCH("/:id/checklist/:itemId", handlers.ToggleChecklistItem)
	}
}
