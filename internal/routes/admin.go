package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/scouts", handlers.ListScouts)
		admin.POST("/badges", handlers.CreateBadge)
	}
}
