package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterScoutRoutes(r gin.IRouter) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", handlers.GetMe)
		me.PUT("", handlers.UpdateMe)
		me.GET("/points", handlers.GetPointHistory)
		me.GET("/activity", handlers.GetActivityFeed)
	}
}
