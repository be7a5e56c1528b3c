package services

import (
	"testing"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// setClock pins the streak clock to a fixed instant and restores it on
// test cleanup.
func setClock(t *testing.T, at time.Time) {
	t.Helper()
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = time.Now })
}

var streakDay0 = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func TestCheckIn_FirstEver(t *testing.T) {
	SetupTestDB()
	createScout(t, "st1")
	setClock(t, streakDay0)

	res, err := CheckIn("st1")
	assert.NoError(t, err)
	assert.Equal(t, XPDailyCheckIn, res.XPEarned)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, 1, res.LongestStreak)
	assert.True(t, res.IsNewStreak)
	assert.Equal(t, 0, res.Milestone)
}

func TestCheckIn_SameDayIsIdempotent(t *testing.T) {
	SetupTestDB()
	createScout(t, "st2")
	setClock(t, streakDay0)

	first, err := CheckIn("st2")
	assert.NoError(t, err)
	assert.Equal(t, XPDailyCheckIn, first.XPEarned)

	// Later the same calendar day
	nowFunc = func() time.Time { return streakDay0.Add(8 * time.Hour) }
	second, err := CheckIn("st2")
	assert.NoError(t, err)
	assert.Equal(t, 0, second.XPEarned)
	assert.Equal(t, 1, second.CurrentStreak)

	var count int64
	database.DB.Model(&models.PointLog{}).Where("scout_id = ?", "st2").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCheckIn_ConsecutiveDaysExtend(t *testing.T) {
	SetupTestDB()
	createScout(t, "st3")

	for day := 0; day < 3; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		res, err := CheckIn("st3")
		assert.NoError(t, err)
		assert.Equal(t, day+1, res.CurrentStreak)
	}

	state, err := GetStreak("st3")
	assert.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
	assert.True(t, state.TodayCheckedIn)
}

func TestCheckIn_MissedDayResets(t *testing.T) {
	SetupTestDB()
	createScout(t, "st4")

	for day := 0; day < 4; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		_, err := CheckIn("st4")
		assert.NoError(t, err)
	}

	// Skip day 4, return on day 5
	setClock(t, streakDay0.AddDate(0, 0, 5))
	res, err := CheckIn("st4")
	assert.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.True(t, res.IsNewStreak)
	// Longest streak survives the lapse
	assert.Equal(t, 4, res.LongestStreak)
}

func TestGetStreak_LapseVisibleWithoutCheckIn(t *testing.T) {
	SetupTestDB()
	createScout(t, "st5")

	setClock(t, streakDay0)
	_, err := CheckIn("st5")
	assert.NoError(t, err)

	// Two days later, just reading must already show the lapsed streak
	setClock(t, streakDay0.AddDate(0, 0, 2))
	state, err := GetStreak("st5")
	assert.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 1, state.LongestStreak)
	assert.False(t, state.TodayCheckedIn)
}

func TestCheckIn_WeeklyMilestone(t *testing.T) {
	SetupTestDB()
	createScout(t, "st6")

	var day7, day14 *CheckInResult
	for day := 0; day < 14; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		res, err := CheckIn("st6")
		assert.NoError(t, err)
		switch day {
		case 6:
			day7 = res
		case 13:
			day14 = res
		default:
			assert.Equal(t, XPDailyCheckIn, res.XPEarned)
			assert.Equal(t, 0, res.Milestone)
		}
	}

	assert.Equal(t, 7, day7.CurrentStreak)
	assert.Equal(t, 7, day7.Milestone)
	assert.Equal(t, XPDailyCheckIn+XPWeeklyStreakBonus, day7.XPEarned)

	// The bonus recurs on every full week, not just the first
	assert.Equal(t, 14, day14.CurrentStreak)
	assert.Equal(t, 14, day14.Milestone)
	assert.Equal(t, XPDailyCheckIn+XPWeeklyStreakBonus, day14.XPEarned)
}

func TestCheckIn_MonthlyMilestoneBeatsWeekly(t *testing.T) {
	SetupTestDB()
	createScout(t, "st7")

	var last *CheckInResult
	for day := 0; day < 30; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		res, err := CheckIn("st7")
		assert.NoError(t, err)
		last = res
	}

	assert.Equal(t, 30, last.CurrentStreak)
	assert.Equal(t, 30, last.Milestone)
	// Day 30 pays the monthly bonus, not the weekly one
	assert.Equal(t, XPDailyCheckIn+XPMonthlyStreakBonus, last.XPEarned)

	// Total over 30 days: 30 daily + 4 weekly (7,14,21,28) + 1 monthly
	var scout models.Scout
	database.DB.First(&scout, "id = ?", "st7")
	expected := 30*XPDailyCheckIn + 4*XPWeeklyStreakBonus + XPMonthlyStreakBonus
	assert.Equal(t, expected, scout.XPTotal)
}

func TestCheckIn_WeekProgressWindow(t *testing.T) {
	SetupTestDB()
	createScout(t, "st8")

	for day := 0; day < 3; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		_, err := CheckIn("st8")
		assert.NoError(t, err)
	}

	state, err := GetStreak("st8")
	assert.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false, true, true, true}, state.WeekProgress)
}

func TestResetStreak_PreservesLongest(t *testing.T) {
	SetupTestDB()
	createScout(t, "st9")

	for day := 0; day < 5; day++ {
		setClock(t, streakDay0.AddDate(0, 0, day))
		_, err := CheckIn("st9")
		assert.NoError(t, err)
	}

	assert.NoError(t, ResetStreak("st9"))

	state, err := GetStreak("st9")
	assert.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 5, state.LongestStreak)
	assert.False(t, state.TodayCheckedIn)
}
