package models

import "time"

// StreakRecord tracks the daily check-in streak for one scout.
//
// WeekProgress is a 7-char window of '0'/'1' flags, oldest first. It is
// revalidated lazily against the current date on every load; there is no
// background expiry timer.
type StreakRecord struct {
	ScoutID       string     `gorm:"primaryKey;type:text" json:"scoutId"`
	CurrentStreak int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak int        `gorm:"default:0" json:"longestStreak"`
	LastCheckIn   *time.Time `json:"lastCheckIn"`
	WeekProgress  string     `gorm:"type:varchar(7);default:'0000000'" json:"weekProgress"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Scout Scout `gorm:"foreignKey:ScoutID" json:"-"`
}

func (StreakRecord) TableName() string {
	return "streak_records"
}
