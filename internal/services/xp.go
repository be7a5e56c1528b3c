package services

import (
	"fmt"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"gorm.io/gorm"
)

// AwardXP credits points to a scout inside a single transaction: one
// scouts-row update plus one ledger row. Level is recomputed from the new
// total. Zero or negative awards are rejected; there is no spend or decay.
//
// If the write fails the award is gone with it; callers must not keep a
// locally bumped total around.
func AwardXP(scoutID string, points int, reason, referenceID string) (*models.Scout, error) {
	var scout *models.Scout
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		scout, err = awardXPTx(tx, scoutID, points, reason, referenceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return scout, nil
}

// awardXPTx is the transactional body of AwardXP, usable from services that
// already hold a transaction (pipeline, streak) so a whole user action
// commits or fails as one unit.
func awardXPTx(tx *gorm.DB, scoutID string, points int, reason, referenceID string) (*models.Scout, error) {
	if points <= 0 {
		return nil, fmt.Errorf("xp award must be positive, got %d", points)
	}

	var scout models.Scout
	if err := tx.First(&scout, "id = ?", scoutID).Error; err != nil {
		return nil, fmt.Errorf("scout %s not found: %w", scoutID, err)
	}

	scout.XPTotal += points
	scout.Level = LevelForXP(scout.XPTotal)

	if err := tx.Model(&models.Scout{}).Where("id = ?", scoutID).
		Updates(map[string]interface{}{"xp_total": scout.XPTotal, "level": scout.Level}).Error; err != nil {
		return nil, err
	}

	entry := models.PointLog{
		ScoutID:     scoutID,
		Points:      points,
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	logger.Debug().
		Str("scout", scoutID).
		Int("points", points).
		Str("reason", reason).
		Int("total", scout.XPTotal).
		Msg("XP awarded")

	return &scout, nil
}

// GetPointHistory returns the most recent ledger entries for a scout.
func GetPointHistory(scoutID string, limit int) ([]models.PointLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.PointLog
	err := database.DB.Where("scout_id = ?", scoutID).
		Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}
