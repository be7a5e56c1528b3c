package services

import (
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"gorm.io/gorm"
)

// nowFunc is swapped out in tests to walk across calendar days.
var nowFunc = time.Now

const emptyWeek = "0000000"

// daysBetween counts calendar-day boundaries between a and b, ignoring the
// time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// StreakState is the load-time view of a streak record, revalidated
// against today.
type StreakState struct {
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	TodayCheckedIn bool   `json:"todayCheckedIn"`
	WeekProgress   []bool `json:"weekProgress"`
}

// CheckInResult describes the outcome of one check-in.
type CheckInResult struct {
	XPEarned      int  `json:"xpEarned"`
	CurrentStreak int  `json:"currentStreak"`
	LongestStreak int  `json:"longestStreak"`
	IsNewStreak   bool `json:"isNewStreak"`
	// Milestone is the streak day that triggered a bonus (7, 14, 21, ...
	// or 30); 0 when no milestone was hit.
	Milestone int `json:"milestone,omitempty"`
}

func weekToBools(s string) []bool {
	out := make([]bool, 7)
	for i, r := range s {
		if i >= 7 {
			break
		}
		out[i] = r == '1'
	}
	return out
}

// shiftWeek slides the 7-day window left and appends today's flag.
func shiftWeek(s string, checked bool) string {
	if len(s) != 7 {
		s = emptyWeek
	}
	flag := "0"
	if checked {
		flag = "1"
	}
	return s[1:] + flag
}

// loadStreakTx fetches (or creates) the record and applies lazy expiry:
// a gap of more than one day zeroes the current streak and clears the
// weekly window. LongestStreak is never reduced.
func loadStreakTx(tx *gorm.DB, scoutID string) (*models.StreakRecord, bool, error) {
	now := nowFunc()

	var rec models.StreakRecord
	err := tx.First(&rec, "scout_id = ?", scoutID).Error
	if err == gorm.ErrRecordNotFound {
		rec = models.StreakRecord{ScoutID: scoutID, WeekProgress: emptyWeek}
		if err := tx.Create(&rec).Error; err != nil {
			return nil, false, err
		}
		return &rec, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if rec.LastCheckIn == nil {
		if rec.CurrentStreak != 0 || rec.WeekProgress != emptyWeek {
			rec.CurrentStreak = 0
			rec.WeekProgress = emptyWeek
			if err := tx.Save(&rec).Error; err != nil {
				return nil, false, err
			}
		}
		return &rec, false, nil
	}

	switch delta := daysBetween(*rec.LastCheckIn, now); {
	case delta <= 0:
		return &rec, true, nil
	case delta == 1:
		// Streak preserved, eligible to extend today
		return &rec, false, nil
	default:
		rec.CurrentStreak = 0
		rec.WeekProgress = emptyWeek
		if err := tx.Save(&rec).Error; err != nil {
			return nil, false, err
		}
		return &rec, false, nil
	}
}

// GetStreak loads and revalidates the streak for a scout.
func GetStreak(scoutID string) (*StreakState, error) {
	var state *StreakState
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		rec, today, err := loadStreakTx(tx, scoutID)
		if err != nil {
			return err
		}
		state = &StreakState{
			CurrentStreak:  rec.CurrentStreak,
			LongestStreak:  rec.LongestStreak,
			TodayCheckedIn: today,
			WeekProgress:   weekToBools(rec.WeekProgress),
		}
		return nil
	})
	return state, err
}

// CheckIn performs the daily check-in. Idempotent per calendar day: a
// second call the same day earns nothing and changes nothing.
//
// Every check-in pays the daily base. Day 30 pays the monthly bonus;
// otherwise every 7th day pays the weekly bonus.
func CheckIn(scoutID string) (*CheckInResult, error) {
	var result *CheckInResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		rec, today, err := loadStreakTx(tx, scoutID)
		if err != nil {
			return err
		}
		if today {
			result = &CheckInResult{
				XPEarned:      0,
				CurrentStreak: rec.CurrentStreak,
				LongestStreak: rec.LongestStreak,
			}
			return nil
		}

		now := nowFunc()
		rec.CurrentStreak++
		if rec.CurrentStreak > rec.LongestStreak {
			rec.LongestStreak = rec.CurrentStreak
		}
		rec.WeekProgress = shiftWeek(rec.WeekProgress, true)
		rec.LastCheckIn = &now

		xp := XPDailyCheckIn
		milestone := 0
		switch {
		case rec.CurrentStreak == 30:
			xp += XPMonthlyStreakBonus
			milestone = 30
		case rec.CurrentStreak%7 == 0:
			xp += XPWeeklyStreakBonus
			milestone = rec.CurrentStreak
		}

		if err := tx.Save(rec).Error; err != nil {
			return err
		}

		reason := ReasonDailyCheckIn
		if milestone > 0 {
			reason = ReasonStreakMilestone
		}
		if _, err := awardXPTx(tx, scoutID, xp, reason, ""); err != nil {
			return err
		}

		result = &CheckInResult{
			XPEarned:      xp,
			CurrentStreak: rec.CurrentStreak,
			LongestStreak: rec.LongestStreak,
			IsNewStreak:   rec.CurrentStreak == 1,
			Milestone:     milestone,
		}
		return nil
	})
	return result, err
}

// ResetStreak zeroes the current streak and weekly window. The longest
// streak is a lifetime stat and survives the reset.
func ResetStreak(scoutID string) error {
	return database.DB.Model(&models.StreakRecord{}).
		Where("scout_id = ?", scoutID).
		Updates(map[string]interface{}{
			"current_streak": 0,
			"last_check_in":  nil,
			"week_progress":  emptyWeek,
		}).Error
}
