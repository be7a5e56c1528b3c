package handlers

import (
	"fmt"
	"net/http"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetStreak GET /streak
// Loads and lazily revalidates the streak for the current scout.
func GetStreak(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := services.GetStreak(scoutID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load streak"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": state})
}

// CheckIn POST /streak/check-in
func CheckIn(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := services.CheckIn(scoutID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Check-in failed"})
		return
	}

	if result.XPEarned > 0 {
		message := fmt.Sprintf("+%d XP, day %d of your streak", result.XPEarned, result.CurrentStreak)
		if result.Milestone > 0 {
			message = fmt.Sprintf("🔥 Day %d milestone! +%d XP", result.Milestone, result.XPEarned)
		}
		CreateNotification(database.DB, models.Notification{
			ScoutID: scoutID.(string),
			Type:    models.NotificationTypeSuccess,
			Title:   "Daily check-in",
			Message: message,
		})
		checkBadgesAndNotify(scoutID.(string))
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ResetStreak POST /streak/reset
func ResetStreak(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := services.ResetStreak(scoutID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Streak reset"})
}
