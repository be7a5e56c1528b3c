package services

import (
	"math"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"gorm.io/gorm"
)

// BadgeStats is the statistic snapshot badges are evaluated against.
type BadgeStats struct {
	PlayersAdded   int `json:"playersAdded"`
	Placements     int `json:"placements"`
	EventsHosted   int `json:"eventsHosted"`
	EventsAttended int `json:"eventsAttended"`
	XPTotal        int `json:"xpTotal"`
	Level          int `json:"level"`
}

func (s BadgeStats) value(t models.StatType) int {
	switch t {
	case models.StatPlayersAdded:
		return s.PlayersAdded
	case models.StatPlacements:
		return s.Placements
	case models.StatEventsHosted:
		return s.EventsHosted
	case models.StatEventsAttended:
		return s.EventsAttended
	case models.StatXPTotal:
		return s.XPTotal
	case models.StatLevel:
		return s.Level
	}
	return 0
}

// BadgeProgress pairs a badge definition with the scout's progress
// towards it. Derived, never stored.
type BadgeProgress struct {
	Badge        models.Badge `json:"badge"`
	CurrentValue int          `json:"currentValue"`
	Earned       bool         `json:"earned"`
	Progress     int          `json:"progress"` // 0..100, capped
	UnlockedAt   *time.Time   `json:"unlockedAt,omitempty"`
}

// EvaluateProgress is the pure mapping from stats to progress entries.
// Progress is clamped to [0,100] no matter how far past the threshold the
// statistic runs.
func EvaluateProgress(stats BadgeStats, badges []models.Badge) []BadgeProgress {
	out := make([]BadgeProgress, 0, len(badges))
	for _, b := range badges {
		current := stats.value(b.StatType)
		progress := 100
		if b.Threshold > 0 {
			progress = int(math.Round(float64(current) / float64(b.Threshold) * 100))
			if progress > 100 {
				progress = 100
			}
			if progress < 0 {
				progress = 0
			}
		}
		out = append(out, BadgeProgress{
			Badge:        b,
			CurrentValue: current,
			Earned:       current >= b.Threshold,
			Progress:     progress,
		})
	}
	return out
}

// CollectStats gathers the current statistic values for a scout.
func CollectStats(db *gorm.DB, scoutID string) (BadgeStats, error) {
	var stats BadgeStats

	var scout models.Scout
	if err := db.First(&scout, "id = ?", scoutID).Error; err != nil {
		return stats, err
	}
	stats.XPTotal = scout.XPTotal
	stats.Level = scout.Level
	stats.Placements = scout.PlacementsCount

	var playerCount int64
	db.Model(&models.Player{}).Where("scout_id = ?", scoutID).Count(&playerCount)
	stats.PlayersAdded = int(playerCount)

	var hosted int64
	db.Model(&models.ScoutingEvent{}).Where("scout_id = ? AND role = ?", scoutID, models.EventRoleHost).Count(&hosted)
	stats.EventsHosted = int(hosted)

	var attended int64
	db.Model(&models.ScoutingEvent{}).Where("scout_id = ? AND role = ?", scoutID, models.EventRoleAttendee).Count(&attended)
	stats.EventsAttended = int(attended)

	return stats, nil
}

// CheckBadges evaluates the catalog against the scout's current stats and
// persists any newly crossed badges, crediting their XP bonus. Returns
// only the badges unlocked by this call; previously earned ones never
// re-fire because the unlock rows are the snapshot.
func CheckBadges(scoutID string) ([]models.Badge, error) {
	var newBadges []models.Badge

	var existingIDs []string
	database.DB.Model(&models.ScoutBadge{}).Where("scout_id = ?", scoutID).Pluck("badge_id", &existingIDs)

	existingSet := make(map[string]bool)
	for _, id := range existingIDs {
		existingSet[id] = true
	}

	stats, err := CollectStats(database.DB, scoutID)
	if err != nil {
		return nil, err
	}

	var catalog []models.Badge
	if err := database.DB.Find(&catalog).Error; err != nil {
		return nil, err
	}

	for _, entry := range EvaluateProgress(stats, catalog) {
		if !entry.Earned || existingSet[entry.Badge.ID] {
			continue
		}

		unlock := models.ScoutBadge{
			ScoutID:    scoutID,
			BadgeID:    entry.Badge.ID,
			Progress:   entry.CurrentValue,
			UnlockedAt: time.Now(),
		}
		if err := database.DB.Create(&unlock).Error; err != nil {
			continue
		}

		if entry.Badge.XPBonus > 0 {
			// Bonus may push xp_total/level badges over their own
			// thresholds; the next evaluation picks those up.
			AwardXP(scoutID, entry.Badge.XPBonus, ReasonBadgeBonus, entry.Badge.ID)
		}

		newBadges = append(newBadges, entry.Badge)
	}

	return newBadges, nil
}

// GetBadgeProgress returns the full catalog annotated with the scout's
// progress and unlock timestamps.
func GetBadgeProgress(scoutID string) ([]BadgeProgress, error) {
	stats, err := CollectStats(database.DB, scoutID)
	if err != nil {
		return nil, err
	}

	var catalog []models.Badge
	if err := database.DB.Order("threshold asc").Find(&catalog).Error; err != nil {
		return nil, err
	}

	var unlocks []models.ScoutBadge
	database.DB.Where("scout_id = ?", scoutID).Find(&unlocks)
	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.BadgeID] = u.UnlockedAt
	}

	progress := EvaluateProgress(stats, catalog)
	for i := range progress {
		if t, ok := unlockedAt[progress[i].Badge.ID]; ok {
			ts := t
			progress[i].UnlockedAt = &ts
			// A persisted unlock is authoritative: badges never un-earn
			// even if a derived statistic were to move backwards.
			progress[i].Earned = true
			progress[i].Progress = 100
		}
	}
	return progress, nil
}
