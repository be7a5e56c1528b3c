package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/WarubiSports/scout-backend/pkg/errors"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type PlayerInput struct {
	Name             string  `json:"name" binding:"required"`
	Position         string  `json:"position"`
	Club             string  `json:"club"`
	GradYear         int     `json:"gradYear"`
	GPA              float64 `json:"gpa"`
	CompetitionLevel string  `json:"competitionLevel"`
	VideoURL         string  `json:"videoUrl"`
	ParentName       string  `json:"parentName"`
	ParentEmail      string  `json:"parentEmail"`
	ParentPhone      string  `json:"parentPhone"`
}

// checkBadgesAndNotify re-evaluates the badge catalog after any
// statistic-affecting mutation and notifies newly crossed unlocks.
func checkBadgesAndNotify(scoutID string) {
	newBadges, err := services.CheckBadges(scoutID)
	if err != nil {
		logger.Warn().Err(err).Str("scout", scoutID).Msg("Badge evaluation failed")
		return
	}
	if len(newBadges) > 0 {
		NotifyNewBadges(scoutID, newBadges)
		for _, b := range newBadges {
			services.LogActivity(scoutID, models.ActivityBadgeUnlocked, b.ID, "Unlocked "+b.Name)
		}
	}
}

// CreatePlayer POST /players
//
// Logs a prospect and applies the profile bonuses (video, complete
// profile, parent contact) as one summed award with one combined
// notification. Kicks off the initial AI evaluation in the background.
func CreatePlayer(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := models.Player{
		ScoutID:          scoutID.(string),
		Name:             input.Name,
		Position:         input.Position,
		Club:             input.Club,
		GradYear:         input.GradYear,
		GPA:              input.GPA,
		CompetitionLevel: input.CompetitionLevel,
		VideoURL:         input.VideoURL,
		ParentName:       input.ParentName,
		ParentEmail:      input.ParentEmail,
		ParentPhone:      input.ParentPhone,
		Status:           models.StatusLead,
		Recalibrating:    input.Position != "" || input.Club != "",
	}

	if err := database.DB.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	// One summed ledger write for the whole add action
	total, parts := services.PlayerAddBonus(&player)
	if _, err := services.AwardXP(scoutID.(string), total, services.ReasonPlayerLogged, player.ID); err != nil {
		logger.Error().Err(err).Str("player", player.ID).Msg("Player add award failed")
	} else {
		CreateNotification(database.DB, models.Notification{
			ScoutID:  scoutID.(string),
			Type:     models.NotificationTypeSuccess,
			Title:    "Player logged",
			Message:  fmt.Sprintf("+%d XP for %s (%s)", total, player.Name, strings.Join(parts, ", ")),
			PlayerID: &player.ID,
		})
	}

	services.LogActivity(scoutID.(string), models.ActivityPlayerAdded, player.ID, "Added "+player.Name)
	checkBadgesAndNotify(scoutID.(string))

	if player.Recalibrating {
		go services.RecalibratePlayer(player.ID)
	}

	c.JSON(http.StatusCreated, gin.H{"player": player, "xpAwarded": total})
}

// ListPlayers GET /players
func ListPlayers(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := database.DB.Where("scout_id = ?", scoutID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var players []models.Player
	if err := query.Order("created_at desc").Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GetPlayer GET /players/:id
func GetPlayer(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var player models.Player
	if err := database.DB.First(&player, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.Error(errors.NotFound("Player not found"))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": player})
}

// UpdatePlayer PUT /players/:id
//
// A change to any high-impact field (position, GPA, club, competition
// level, video) marks the record recalibrating and re-runs the AI
// evaluation asynchronously. The edit commits regardless of what the AI
// layer does afterwards.
func UpdatePlayer(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var player models.Player
	if err := database.DB.First(&player, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.Error(errors.NotFound("Player not found"))
		c.Abort()
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	highImpact := input.Position != player.Position ||
		input.GPA != player.GPA ||
		input.Club != player.Club ||
		input.CompetitionLevel != player.CompetitionLevel ||
		input.VideoURL != player.VideoURL

	player.Name = input.Name
	player.Position = input.Position
	player.Club = input.Club
	player.GradYear = input.GradYear
	player.GPA = input.GPA
	player.CompetitionLevel = input.CompetitionLevel
	player.VideoURL = input.VideoURL
	player.ParentName = input.ParentName
	player.ParentEmail = input.ParentEmail
	player.ParentPhone = input.ParentPhone
	if highImpact {
		player.Recalibrating = true
	}

	if err := database.DB.Save(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		return
	}

	if highImpact {
		go services.RecalibratePlayer(player.ID)
	}

	c.JSON(http.StatusOK, gin.H{"player": player, "recalibrating": player.Recalibrating})
}

type StatusInput struct {
	Status models.PlayerStatus `json:"status" binding:"required"`
}

// UpdatePlayerStatus PUT /players/:id/status
//
// Runs the pipeline transition policy. The status change commits first;
// the trial dispatch for newly offered players happens after commit and
// degrades to an informational notification on failure.
func UpdatePlayerStatus(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := services.ChangeStatus(scoutID.(string), c.Param("id"), input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if change.XPAwarded > 0 {
		notifType := models.NotificationTypeSuccess
		message := fmt.Sprintf("+%d XP, %s is now %s", change.XPAwarded, change.Player.Name, change.Player.Status)
		if change.Placement {
			message = fmt.Sprintf("🎉 %s placed! +%d XP", change.Player.Name, change.XPAwarded)
			services.LogActivity(scoutID.(string), models.ActivityPlayerPlaced, change.Player.ID, change.Player.Name+" placed")
		} else {
			services.LogActivity(scoutID.(string), models.ActivityStatusChanged, change.Player.ID, message)
		}
		CreateNotification(database.DB, models.Notification{
			ScoutID:  scoutID.(string),
			Type:     notifType,
			Title:    change.AwardTitle,
			Message:  message,
			PlayerID: &change.Player.ID,
		})
	}

	if change.DispatchTrial {
		dispatchTrialBestEffort(scoutID.(string), change.Player)
	}

	checkBadgesAndNotify(scoutID.(string))

	c.JSON(http.StatusOK, gin.H{
		"player":    change.Player,
		"xpAwarded": change.XPAwarded,
	})
}

// dispatchTrialBestEffort notifies the partner trial system. A failure is
// informational only — the committed status change stands.
func dispatchTrialBestEffort(scoutID string, player *models.Player) {
	if _, err := services.DispatchTrialInvite(player); err != nil {
		logger.Warn().Err(err).Str("player", player.ID).Msg("Trial dispatch failed")
		CreateNotification(database.DB, models.Notification{
			ScoutID:  scoutID,
			Type:     models.NotificationTypeInfo,
			Title:    "Trial invite pending",
			Message:  fmt.Sprintf("Could not reach the trial system for %s. The offer is saved; retry the invite later.", player.Name),
			PlayerID: &player.ID,
		})
	}
}

// EvaluatePlayerNow POST /players/:id/evaluate
// Synchronous AI evaluation, quota-gated.
func EvaluatePlayerNow(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var player models.Player
	if err := database.DB.First(&player, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.Error(errors.NotFound("Player not found"))
		c.Abort()
		return
	}

	if !services.ConsumeAIQuota(scoutID.(string)) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily AI quota reached"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	eval, err := services.EvaluatePlayer(ctx, &player)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Evaluation unavailable, try again later"})
		return
	}

	if err := services.ApplyEvaluation(player.ID, eval); err != nil {
		c.Error(errors.Internal("Failed to save evaluation"))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"evaluation": eval})
}

// DeletePlayer DELETE /players/:id
func DeletePlayer(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var player models.Player
	if err := database.DB.First(&player, "id = ? AND scout_id = ?", c.Param("id"), scoutID).Error; err != nil {
		c.Error(errors.NotFound("Player not found"))
		c.Abort()
		return
	}

	database.DB.Delete(&player)

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}
