package services

import (
	"sync"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
)

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	ScoutID    string `json:"scoutId"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Region     string `json:"region"`
	XPTotal    int    `json:"xpTotal"`
	Level      int    `json:"level"`
	Placements int    `json:"placements"`
}

// In-memory cache; XP changes are frequent and exact rank freshness is
// not worth a query per page view.
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	lbCache cachedLeaderboard
	lbMutex sync.RWMutex
	lbTTL   = 30 * time.Second
)

// InvalidateLeaderboardCache clears the cache (call after large awards)
func InvalidateLeaderboardCache() {
	lbMutex.Lock()
	defer lbMutex.Unlock()
	lbCache = cachedLeaderboard{}
}

// GetLeaderboard returns the top scouts ranked by XP, ties broken by
// placements.
func GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	lbMutex.RLock()
	if len(lbCache.Entries) > 0 && time.Now().Before(lbCache.ExpiresAt) {
		entries := lbCache.Entries
		lbMutex.RUnlock()
		if len(entries) > limit {
			entries = entries[:limit]
		}
		return entries, nil
	}
	lbMutex.RUnlock()

	var scouts []models.Scout
	if err := database.DB.
		Order("xp_total desc, placements_count desc, created_at asc").
		Limit(100).
		Find(&scouts).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scouts))
	for i, s := range scouts {
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			ScoutID:    s.ID,
			Name:       s.Name,
			Avatar:     s.Image,
			Region:     s.Region,
			XPTotal:    s.XPTotal,
			Level:      s.Level,
			Placements: s.PlacementsCount,
		})
	}

	lbMutex.Lock()
	lbCache = cachedLeaderboard{Entries: entries, ExpiresAt: time.Now().Add(lbTTL)}
	lbMutex.Unlock()

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
