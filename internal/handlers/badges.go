package handlers

import (
	"net/http"

	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/WarubiSports/scout-backend/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ListBadges GET /badges
// Returns the full catalog annotated with the scout's progress.
func ListBadges(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := services.GetBadgeProgress(scoutID.(string))
	if err != nil {
		c.Error(errors.Internal("Failed to fetch badges"))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": progress})
}
