package services

import (
	"fmt"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"gorm.io/gorm"
)

// transitionAward describes what arriving at a stage pays and triggers.
// The table is keyed by the stage being entered; adjacency and
// award-once rules are enforced in changeStatusTx.
type transitionAward struct {
	XP            int
	Reason        string
	Title         string
	DispatchTrial bool
	Placement     bool
}

var transitionTable = map[models.PlayerStatus]transitionAward{
	models.StatusContacted: {
		XP:     XPPlayerContacted,
		Reason: ReasonStatusAdvance,
		Title:  "Player contacted",
	},
	models.StatusInterested: {
		XP:     XPPlayerInterested,
		Reason: ReasonStatusAdvance,
		Title:  "Player interested",
	},
	models.StatusOffered: {
		XP:            XPPlayerOffered,
		Reason:        ReasonStatusAdvance,
		Title:         "Offer extended",
		DispatchTrial: true,
	},
	models.StatusPlaced: {
		XP:        XPPlacement,
		Reason:    ReasonPlacement,
		Title:     "Player placed!",
		Placement: true,
	},
}

// StatusChange is the committed outcome of a pipeline transition.
type StatusChange struct {
	Player        *models.Player
	XPAwarded     int
	AwardTitle    string
	Placement     bool
	DispatchTrial bool
}

// ChangeStatus moves a player to a new pipeline stage and applies the
// transition policy in one transaction. The status change itself always
// commits; the trial dispatch flagged on the result is for the caller to
// run best-effort after commit.
func ChangeStatus(scoutID, playerID string, newStatus models.PlayerStatus) (*StatusChange, error) {
	var change *StatusChange
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		change, err = changeStatusTx(tx, scoutID, playerID, newStatus)
		return err
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func changeStatusTx(tx *gorm.DB, scoutID, playerID string, newStatus models.PlayerStatus) (*StatusChange, error) {
	newIdx := models.StageIndex(newStatus)
	if newIdx == 0 {
		return nil, fmt.Errorf("unknown pipeline status %q", newStatus)
	}

	var player models.Player
	if err := tx.First(&player, "id = ? AND scout_id = ?", playerID, scoutID).Error; err != nil {
		return nil, err
	}

	change := &StatusChange{Player: &player}
	if player.Status == newStatus {
		// No-op update; nothing to pay (a second "Placed" submit lands here)
		return change, nil
	}

	oldIdx := models.StageIndex(player.Status)
	award, hasAward := transitionTable[newStatus]

	// Award-once: a stage pays only the first time the player ever reaches
	// it. Adjacent forward edges pay their fixed amount; Placed pays on
	// first arrival from any stage; skipped or backward edges pay nothing.
	pays := hasAward && newIdx > player.HighestStage &&
		(newIdx == oldIdx+1 || newStatus == models.StatusPlaced)

	player.Status = newStatus
	if newIdx > player.HighestStage {
		player.HighestStage = newIdx
	}
	if err := tx.Model(&models.Player{}).Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"status":        player.Status,
			"highest_stage": player.HighestStage,
		}).Error; err != nil {
		return nil, err
	}

	if !pays {
		return change, nil
	}

	if _, err := awardXPTx(tx, scoutID, award.XP, award.Reason, player.ID); err != nil {
		return nil, err
	}
	change.XPAwarded = award.XP
	change.AwardTitle = award.Title
	change.DispatchTrial = award.DispatchTrial

	if award.Placement {
		if err := tx.Model(&models.Scout{}).Where("id = ?", scoutID).
			UpdateColumn("placements_count", gorm.Expr("placements_count + 1")).Error; err != nil {
			return nil, err
		}
		change.Placement = true
	}

	return change, nil
}

// PlayerAddBonus sums the flat bonuses for a freshly logged player: the
// base logging award plus video, complete-profile and parent-contact
// bonuses. Applied as ONE ledger write by the caller.
func PlayerAddBonus(p *models.Player) (int, []string) {
	total := XPPlayerLogged
	parts := []string{"player logged"}

	if p.VideoURL != "" {
		total += XPPlayerVideo
		parts = append(parts, "highlight video")
	}
	if p.HasCompleteProfile() {
		total += XPPlayerCompleteProfile
		parts = append(parts, "complete profile")
	}
	if p.HasParentContact() {
		total += XPPlayerParentContact
		parts = append(parts, "parent contact")
	}
	return total, parts
}

// EventAward returns the fixed creation award for an event role.
func EventAward(role models.EventRole) (int, string) {
	if role == models.EventRoleHost {
		return XPEventHosted, ReasonEventHosted
	}
	return XPEventAttended, ReasonEventAttended
}

// OutreachResult describes what sending one outreach message triggered.
type OutreachResult struct {
	Message       *models.OutreachMessage
	FirstOutreach bool
	FirstXP       int
	AutoAdvance   *StatusChange // non-nil when Lead auto-advanced to Contacted
}

// RecordOutreach appends a message to the outreach log. The first message
// ever sent to a player pays the first-outreach award and, if the player
// is still a Lead, auto-advances them to Contacted — compounding the
// Contacted transition award.
func RecordOutreach(scoutID, playerID, channel, content string) (*OutreachResult, error) {
	var result *OutreachResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "id = ? AND scout_id = ?", playerID, scoutID).Error; err != nil {
			return err
		}

		var prior int64
		if err := tx.Model(&models.OutreachMessage{}).
			Where("player_id = ? AND scout_id = ?", playerID, scoutID).
			Count(&prior).Error; err != nil {
			return err
		}

		msg := models.OutreachMessage{
			ScoutID:  scoutID,
			PlayerID: playerID,
			Channel:  channel,
			Content:  content,
		}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}

		result = &OutreachResult{Message: &msg}
		if prior > 0 {
			return nil
		}

		result.FirstOutreach = true
		result.FirstXP = XPFirstOutreach
		if _, err := awardXPTx(tx, scoutID, XPFirstOutreach, ReasonFirstOutreach, playerID); err != nil {
			return err
		}

		if player.Status == models.StatusLead {
			change, err := changeStatusTx(tx, scoutID, playerID, models.StatusContacted)
			if err != nil {
				return err
			}
			result.AutoAdvance = change
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
