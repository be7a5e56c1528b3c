package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterGamificationRoutes(r gin.IRouter) {
	streak := r.Group("/streak")
	streak.Use(middleware.AuthMiddleware())
	{
		streak.GET("", handlers.GetStreak)
		streak.POST("/check-in", handlers.CheckIn)
		streak.POST("/reset", handlers.ResetStreak)
	}

	badges := r.Group("/badges")
	badges.Use(middleware.AuthMiddleware())
	{
		badges.GET("", handlers.ListBadges)
	}

	r.GET("/leaderboard", middleware.OptionalAuthMiddleware(), handlers.GetLeaderboard)
}
