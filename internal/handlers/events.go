package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func pqAgenda(agenda []string) pq.StringArray {
	if agenda == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(agenda)
}

type EventInput struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	Role        models.EventRole `json:"role" binding:"required"`
}

// CreateEvent POST /events
//
// Creating an event pays its fixed role award once, at creation. Hosting
// pays more than attending.
func CreateEvent(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role != models.EventRoleHost && input.Role != models.EventRoleAttendee {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be HOST or ATTENDEE"})
		return
	}

	event := models.ScoutingEvent{
		ScoutID:     scoutID.(string),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Role:        input.Role,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	xp, reason := services.EventAward(input.Role)
	if _, err := services.AwardXP(scoutID.(string), xp, reason, event.ID); err != nil {
		logger.Error().Err(err).Str("event", event.ID).Msg("Event award failed")
	} else {
		title := "Event scheduled"
		if input.Role == models.EventRoleHost {
			title = "Hosting event"
		}
		CreateNotification(database.DB, models.Notification{
			ScoutID: scoutID.(string),
			Type:    models.NotificationTypeSuccess,
			Title:   title,
			Message: fmt.Sprintf("+%d XP for %s", xp, event.Title),
			EventID: &event.ID,
		})
	}

	services.LogActivity(scoutID.(string), models.ActivityEventCreated, event.ID, "Created event "+event.Title)
	checkBadgesAndNotify(scoutID.(string))

	c.JSON(http.StatusCreated, gin.H{"event": event, "xpAwarded": xp})
}

// ListEvents GET /events
func ListEvents(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var events []models.ScoutingEvent
	if err := database.DB.Where("scout_id = ?", scoutID).
		Preload("Checklist").
		Order("start_time desc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent GET /events/:id
func GetEvent(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var event models.ScoutingEvent
	if err := database.DB.
		Preload("Checklist").
		Preload("Attendees.Player").
		First(&event, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

type AttendeeInput struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// AddAttendee POST /events/:id/attendees
func AddAttendee(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input AttendeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event models.ScoutingEvent
	if err := database.DB.First(&event, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var player models.Player
	if err := database.DB.First(&player, "id = ? AND scout_id = ?", input.PlayerID, scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var existing int64
	database.DB.Model(&models.EventAttendee{}).
		Where("event_id = ? AND player_id = ?", event.ID, player.ID).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Player already attending"})
		return
	}

	attendee := models.EventAttendee{EventID: event.ID, PlayerID: player.ID}
	if err := database.DB.Create(&attendee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add attendee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendee": attendee})
}

// GenerateEventPlan POST /events/:id/plan
//
// AI event planning degrades to a minimal hand-built plan; event state is
// never blocked on the AI layer.
func GenerateEventPlan(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var event models.ScoutingEvent
	if err := database.DB.First(&event, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if !services.ConsumeAIQuota(scoutID.(string)) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily AI quota reached"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	plan, err := services.GenerateEventPlan(ctx, &event)
	degraded := false
	if err != nil {
		logger.Warn().Err(err).Str("event", event.ID).Msg("Event plan generation failed, using fallback")
		plan = services.FallbackEventPlan()
		degraded = true
	}

	event.MarketingCopy = plan.MarketingCopy
	event.Agenda = pqAgenda(plan.Agenda)
	if err := database.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	// Replace any prior checklist with the generated one
	database.DB.Where("event_id = ?", event.ID).Delete(&models.EventChecklistItem{})
	for _, item := range plan.Checklist {
		database.DB.Create(&models.EventChecklistItem{
			EventID:   event.ID,
			Task:      item.Task,
			Completed: false,
		})
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "plan": plan, "degraded": degraded})
}

// ToggleChecklistItem PUT /events/:id/checklist/:itemId
func ToggleChecklistItem(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var event models.ScoutingEvent
	if err := database.DB.First(&event, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var item models.EventChecklistItem
	if err := database.DB.First(&item, "id = ? AND event_id = ?", c.Param("itemId"), event.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist item not found"})
		return
	}

	item.Completed = !item.Completed
	database.DB.Save(&item)

	c.JSON(http.StatusOK, gin.H{"item": item})
}
