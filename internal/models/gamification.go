package models

import "time"

// PointLog is the append-only ledger of XP awards. One row per applied
// award; multi-bonus actions are summed into a single row before writing.
type PointLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ScoutID     string    `gorm:"index;type:text;not null" json:"scoutId"`
	Points      int       `gorm:"not null" json:"points"`
	Reason      string    `gorm:"size:50;not null" json:"reason"` // e.g. 'player_logged', 'daily_check_in'
	ReferenceID string    `gorm:"size:36" json:"referenceId"`     // player/event/badge ID
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`

	Scout Scout `gorm:"foreignKey:ScoutID" json:"-"`
}

func (PointLog) TableName() string {
	return "point_logs"
}
