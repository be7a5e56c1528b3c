package services

// XP point table. Values are flat awards; multi-bonus actions are summed
// into one ledger write.
const (
	XPDailyCheckIn       = 5
	XPWeeklyStreakBonus  = 25
	XPMonthlyStreakBonus = 100

	XPPlayerLogged          = 10
	XPPlayerVideo           = 15
	XPPlayerCompleteProfile = 10
	XPPlayerParentContact   = 5

	XPFirstOutreach    = 10
	XPPlayerContacted  = 15
	XPPlayerInterested = 25
	XPPlayerOffered    = 50
	XPPlacement        = 200

	XPEventHosted   = 30
	XPEventAttended = 15
)

// BaseXPPerLevel: level = totalXP/100 + 1
const BaseXPPerLevel = 100

// LevelForXP derives the level from a running XP total.
func LevelForXP(total int) int {
	if total < 0 {
		return 1
	}
	return total/BaseXPPerLevel + 1
}

// Ledger reasons (point_logs.reason)
const (
	ReasonDailyCheckIn    = "daily_check_in"
	ReasonStreakMilestone = "streak_milestone"
	ReasonPlayerLogged    = "player_logged"
	ReasonFirstOutreach   = "first_outreach"
	ReasonStatusAdvance   = "status_advance"
	ReasonPlacement       = "placement"
	ReasonEventHosted     = "event_hosted"
	ReasonEventAttended   = "event_attended"
	ReasonBadgeBonus      = "badge_bonus"
)
