package workers

import (
	"fmt"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/handlers"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/go-co-op/gocron/v2"
)

// StartScheduler runs the background jobs: evening streak reminders and a
// periodic leaderboard cache refresh.
func StartScheduler() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	// 18:00 UTC: nudge scouts whose streak expires at midnight
	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(18, 0, 0))),
		gocron.NewTask(remindStreaksAtRisk),
	)
	if err != nil {
		return nil, err
	}

	// Keep the leaderboard warm for the dashboard
	_, err = sched.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(func() {
			services.InvalidateLeaderboardCache()
			if _, err := services.GetLeaderboard(20); err != nil {
				logger.Warn().Err(err).Msg("Leaderboard refresh failed")
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	logger.Info().Msg("Background scheduler started")
	return sched, nil
}

// remindStreaksAtRisk notifies scouts who kept their streak alive yesterday
// but have not checked in today.
func remindStreaksAtRisk() {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	yesterday := today.Add(-24 * time.Hour)

	var records []models.StreakRecord
	err := database.DB.
		Where("current_streak > 0 AND last_check_in >= ? AND last_check_in < ?", yesterday, today).
		Find(&records).Error
	if err != nil {
		logger.Error().Err(err).Msg("Streak reminder query failed")
		return
	}

	for _, rec := range records {
		notification := models.Notification{
			ScoutID: rec.ScoutID,
			Type:    models.NotificationTypeAlert,
			Title:   "Streak at risk",
			Message: fmt.Sprintf("Your %d-day streak ends at midnight. Check in to keep it alive!", rec.CurrentStreak),
		}
		if err := handlers.CreateNotification(database.DB, notification); err != nil {
			logger.Warn().Err(err).Str("scout", rec.ScoutID).Msg("Streak reminder failed")
		}
	}

	if len(records) > 0 {
		logger.Info().Int("count", len(records)).Msg("Streak reminders sent")
	}
}
