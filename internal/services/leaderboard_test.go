package services

import (
	"testing"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetLeaderboard_RanksByXPThenPlacements(t *testing.T) {
	SetupTestDB()
	InvalidateLeaderboardCache()

	// XP totals far above anything other tests create
	database.DB.Create(&models.Scout{ID: "lb-a", Name: "A", Email: "lb-a@example.com", XPTotal: 9000000, Level: 90001, PlacementsCount: 1})
	database.DB.Create(&models.Scout{ID: "lb-b", Name: "B", Email: "lb-b@example.com", XPTotal: 9000001, Level: 90001, PlacementsCount: 0})
	database.DB.Create(&models.Scout{ID: "lb-c", Name: "C", Email: "lb-c@example.com", XPTotal: 9000000, Level: 90001, PlacementsCount: 5})

	entries, err := GetLeaderboard(3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, "lb-b", entries[0].ScoutID)
	assert.Equal(t, 1, entries[0].Rank)
	// Tie on XP broken by placements
	assert.Equal(t, "lb-c", entries[1].ScoutID)
	assert.Equal(t, "lb-a", entries[2].ScoutID)
}

func TestGetLeaderboard_CacheServesUntilInvalidated(t *testing.T) {
	SetupTestDB()
	InvalidateLeaderboardCache()

	database.DB.Create(&models.Scout{ID: "lb-d", Name: "D", Email: "lb-d@example.com", XPTotal: 9900000})

	first, err := GetLeaderboard(1)
	assert.NoError(t, err)
	assert.Equal(t, "lb-d", first[0].ScoutID)

	// A newer scout does not appear until the cache is dropped
	database.DB.Create(&models.Scout{ID: "lb-e", Name: "E", Email: "lb-e@example.com", XPTotal: 9900001})

	cached, err := GetLeaderboard(1)
	assert.NoError(t, err)
	assert.Equal(t, "lb-d", cached[0].ScoutID)

	InvalidateLeaderboardCache()
	fresh, err := GetLeaderboard(1)
	assert.NoError(t, err)
	assert.Equal(t, "lb-e", fresh[0].ScoutID)
}
