package routes

import (
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUploadRoutes(r gin.IRouter) {
	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("/highlight", handlers.UploadHighlightVideo)
		upload.POST("/player-photo", handlers.UploadPlayerPhoto)
		upload.POST("/profile-image", handlers.UploadProfileImage)
	}
}
