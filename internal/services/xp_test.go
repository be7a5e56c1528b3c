package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/WarubiSports/scout-backend/internal/config"
	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	logger.Init("test")
	config.AppConfig = &config.Config{JWTSecret: "test_secret_key_12345"}

	// A unique database name per call keeps tests isolated; cache=shared is
	// still needed so every connection in gorm's pool sees the same DB.
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, _ := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.Scout{},
		&models.Player{},
		&models.OutreachMessage{},
		&models.ScoutingEvent{},
		&models.Notification{},
		&models.Badge{},
		&models.ScoutBadge{},
		&models.StreakRecord{},
		&models.PointLog{},
	)
}

func createScout(t *testing.T, id string) *models.Scout {
	t.Helper()
	scout := models.Scout{ID: id, Name: "Scout " + id, Email: id + "@example.com", Level: 1}
	if err := database.DB.Create(&scout).Error; err != nil {
		t.Fatalf("failed to create scout: %v", err)
	}
	return &scout
}

func TestAwardXP_UpdatesTotalAndLedger(t *testing.T) {
	SetupTestDB()
	createScout(t, "xp1")

	scout, err := AwardXP("xp1", 10, ReasonPlayerLogged, "ref-1")
	assert.NoError(t, err)
	assert.Equal(t, 10, scout.XPTotal)
	assert.Equal(t, 1, scout.Level)

	scout, err = AwardXP("xp1", 95, ReasonPlacement, "ref-2")
	assert.NoError(t, err)
	assert.Equal(t, 105, scout.XPTotal)
	assert.Equal(t, 2, scout.Level)

	// Ledger sum must equal the stored total
	var sum int
	database.DB.Model(&models.PointLog{}).Where("scout_id = ?", "xp1").
		Select("COALESCE(SUM(points), 0)").Scan(&sum)
	assert.Equal(t, 105, sum)

	var entries []models.PointLog
	database.DB.Where("scout_id = ?", "xp1").Find(&entries)
	assert.Len(t, entries, 2)
}

func TestAwardXP_RejectsNonPositive(t *testing.T) {
	SetupTestDB()
	createScout(t, "xp2")

	_, err := AwardXP("xp2", 0, ReasonPlayerLogged, "")
	assert.Error(t, err)

	_, err = AwardXP("xp2", -50, ReasonPlayerLogged, "")
	assert.Error(t, err)

	// Nothing written
	var count int64
	database.DB.Model(&models.PointLog{}).Where("scout_id = ?", "xp2").Count(&count)
	assert.Equal(t, int64(0), count)

	var scout models.Scout
	database.DB.First(&scout, "id = ?", "xp2")
	assert.Equal(t, 0, scout.XPTotal)
}

func TestAwardXP_UnknownScout(t *testing.T) {
	SetupTestDB()

	_, err := AwardXP("ghost", 10, ReasonPlayerLogged, "")
	assert.Error(t, err)
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 3, LevelForXP(250))
	assert.Equal(t, 13, LevelForXP(1250))
	assert.Equal(t, 1, LevelForXP(-5))
}

func TestGetPointHistory_OrderAndLimit(t *testing.T) {
	SetupTestDB()
	createScout(t, "xp3")

	for i := 0; i < 5; i++ {
		_, err := AwardXP("xp3", 10+i, ReasonStatusAdvance, "")
		assert.NoError(t, err)
	}

	entries, err := GetPointHistory("xp3", 3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
}
