package handlers

import (
	"net/http"
	"strconv"

	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard GET /leaderboard
func GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := services.GetLeaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
