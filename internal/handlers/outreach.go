package handlers

import (
	"fmt"
	"net/http"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type OutreachInput struct {
	Channel string `json:"channel"`
	Content string `json:"content" binding:"required"`
}

// ListOutreach GET /players/:id/outreach
func ListOutreach(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var messages []models.OutreachMessage
	if err := database.DB.
		Where("player_id = ? AND scout_id = ?", c.Param("id"), scoutID).
		Order("created_at asc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outreach log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendOutreach POST /players/:id/outreach
//
// Appends to the outreach log. The first message to a player pays the
// first-outreach award and, for Leads, auto-advances to Contacted —
// two sequential awards with their own notifications.
func SendOutreach(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input OutreachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Channel == "" {
		input.Channel = "EMAIL"
	}

	result, err := services.RecordOutreach(scoutID.(string), c.Param("id"), input.Channel, input.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	xpAwarded := 0
	if result.FirstOutreach {
		xpAwarded += result.FirstXP
		CreateNotification(database.DB, models.Notification{
			ScoutID:  scoutID.(string),
			Type:     models.NotificationTypeSuccess,
			Title:    "First outreach",
			Message:  fmt.Sprintf("+%d XP for reaching out", result.FirstXP),
			PlayerID: &result.Message.PlayerID,
		})

		if result.AutoAdvance != nil && result.AutoAdvance.XPAwarded > 0 {
			xpAwarded += result.AutoAdvance.XPAwarded
			CreateNotification(database.DB, models.Notification{
				ScoutID:  scoutID.(string),
				Type:     models.NotificationTypeSuccess,
				Title:    result.AutoAdvance.AwardTitle,
				Message:  fmt.Sprintf("+%d XP, %s moved to Contacted", result.AutoAdvance.XPAwarded, result.AutoAdvance.Player.Name),
				PlayerID: &result.Message.PlayerID,
			})
		}
	}

	services.LogActivity(scoutID.(string), models.ActivityOutreachSent, result.Message.PlayerID, "Outreach sent")
	checkBadgesAndNotify(scoutID.(string))

	c.JSON(http.StatusCreated, gin.H{
		"message":   result.Message,
		"xpAwarded": xpAwarded,
	})
}
