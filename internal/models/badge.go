package models

import "time"

type BadgeTier string
type BadgeCategory string

const (
	BadgeTierBronze   BadgeTier = "BRONZE"
	BadgeTierSilver   BadgeTier = "SILVER"
	BadgeTierGold     BadgeTier = "GOLD"
	BadgeTierPlatinum BadgeTier = "PLATINUM"

	BadgeCategoryPipeline   BadgeCategory = "PIPELINE"
	BadgeCategoryEvents     BadgeCategory = "EVENTS"
	BadgeCategoryMilestones BadgeCategory = "MILESTONES"
)

// StatType names the statistic a badge threshold is checked against.
type StatType string

const (
	StatPlayersAdded   StatType = "players_added"
	StatPlacements     StatType = "placements"
	StatEventsHosted   StatType = "events_hosted"
	StatEventsAttended StatType = "events_attended"
	StatXPTotal        StatType = "xp_total"
	StatLevel          StatType = "level"
)

type Badge struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"` // Name of the Lucide icon
	Tier        BadgeTier     `gorm:"type:text" json:"tier"`
	Category    BadgeCategory `gorm:"type:text" json:"category"`
	StatType    StatType      `gorm:"type:text" json:"statType"`
	Threshold   int           `json:"threshold"`
	XPBonus     int           `json:"xpBonus"`
}

// ScoutBadge is a persisted unlock. Rows are only ever inserted, which is
// what makes "newly unlocked" detection survive reloads.
type ScoutBadge struct {
	ScoutID    string    `gorm:"primaryKey;type:text" json:"scoutId"`
	BadgeID    string    `gorm:"primaryKey;type:text" json:"badgeId"`
	Progress   int       `gorm:"default:0" json:"progress"`
	UnlockedAt time.Time `json:"unlockedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
	Scout Scout `gorm:"foreignKey:ScoutID" json:"-"`
}

func (ScoutBadge) TableName() string {
	return "scout_badges"
}
