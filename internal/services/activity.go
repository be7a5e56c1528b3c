package services

import (
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/logger"
)

func LogActivity(scoutID string, activityType models.ActivityType, targetID string, message string) {
	activity := models.ScoutActivity{
		Type:      activityType,
		ScoutID:   scoutID,
		TargetID:  targetID,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Warn().Err(err).Str("type", string(activityType)).Msg("Failed to log activity")
	}
}

// GetActivityFeed returns the most recent activity rows for a scout.
func GetActivityFeed(scoutID string, limit int) ([]models.ScoutActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var feed []models.ScoutActivity
	err := database.DB.Where("scout_id = ?", scoutID).
		Order("created_at desc").Limit(limit).Find(&feed).Error
	return feed, err
}
