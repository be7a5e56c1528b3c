package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterPlayerRoutes(r gin.IRouter) {
	players := r.Group("/players")
	players.Use(middleware.AuthMiddleware())
	{
		players.POST("", handlers.CreatePlayer)
		players.GET("", handlers.ListPlayers)
		players.GET("/:id", handlers.GetPlayer)
		players.PUT("/:id", handlers.UpdatePlayer)
		players.DELETE("/:id", handlers.DeletePlayer)

		players.PATCH("/:id/status", handlers.UpdatePlayerStatus)
		players.POST("/:id/evaluate", middleware.AIRateLimit(), handlers.EvaluatePlayerNow)

		players.GET("/:id/outreach", handlers.ListOutreach)
		players.POST("/:id/outreach", handlers.SendOutreach)
	}
}
