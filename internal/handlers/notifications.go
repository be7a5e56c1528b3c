package handlers

import (
	"net/http"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/errors"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNotifications GET /notifications
func GetNotifications(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var notifications []models.Notification
	if err := database.DB.Where("scout_id = ?", scoutID).Order("created_at desc").Limit(50).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// GetUnreadCount GET /notifications/unread-count
func GetUnreadCount(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var count int64
	database.DB.Model(&models.Notification{}).Where("scout_id = ? AND is_read = ?", scoutID, false).Count(&count)

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead PUT /notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	notificationID := c.Param("id")

	var notification models.Notification
	if err := database.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		c.Error(errors.NotFound("Notification not found"))
		c.Abort()
		return
	}

	if notification.ScoutID != scoutID.(string) {
		c.Error(errors.Forbidden("Forbidden"))
		c.Abort()
		return
	}

	notification.IsRead = true
	database.DB.Save(&notification)

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkAllNotificationsRead PUT /notifications/read-all
func MarkAllNotificationsRead(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	database.DB.Model(&models.Notification{}).Where("scout_id = ? AND is_read = ?", scoutID, false).Update("is_read", true)

	c.JSON(http.StatusOK, gin.H{"message": "All marked as read"})
}

// DeleteNotification DELETE /notifications/:id
func DeleteNotification(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	notificationID := c.Param("id")

	var notification models.Notification
	if err := database.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		c.Error(errors.NotFound("Notification not found"))
		c.Abort()
		return
	}

	if notification.ScoutID != scoutID.(string) {
		c.Error(errors.Forbidden("Forbidden"))
		c.Abort()
		return
	}

	database.DB.Delete(&notification)

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// CreateNotification persists a notification and pushes it to the scout's
// live session if one is connected.
func CreateNotification(tx *gorm.DB, notification models.Notification) error {
	if err := tx.Create(&notification).Error; err != nil {
		logger.Error().Err(err).Msg("Error creating notification")
		return err
	}

	data := map[string]interface{}{
		"id":        notification.ID,
		"type":      notification.Type,
		"title":     notification.Title,
		"message":   notification.Message,
		"playerId":  notification.PlayerID,
		"eventId":   notification.EventID,
		"createdAt": notification.CreatedAt,
		"isRead":    notification.IsRead,
	}

	SendNotificationToScout(notification.ScoutID, data)
	return nil
}

// NotifyNewBadges sends notifications for a list of earned badges
func NotifyNewBadges(scoutID string, badges []models.Badge) {
	for _, b := range badges {
		notification := models.Notification{
			ScoutID: scoutID,
			Type:    models.NotificationTypeSuccess,
			Title:   "Badge unlocked",
			Message: "Unlocked Badge: " + b.Name,
		}
		CreateNotification(database.DB, notification)
	}
}
