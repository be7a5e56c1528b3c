package services

import (
	"testing"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func createPlayer(t *testing.T, id, scoutID string, status models.PlayerStatus) *models.Player {
	t.Helper()
	p := models.Player{ID: id, ScoutID: scoutID, Name: "Player " + id, Status: status}
	if err := database.DB.Create(&p).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	return &p
}

func scoutXP(t *testing.T, id string) int {
	t.Helper()
	var scout models.Scout
	database.DB.First(&scout, "id = ?", id)
	return scout.XPTotal
}

func TestChangeStatus_AdjacentForwardPays(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl1")
	createPlayer(t, "pl1-p", "pl1", models.StatusLead)

	change, err := ChangeStatus("pl1", "pl1-p", models.StatusContacted)
	assert.NoError(t, err)
	assert.Equal(t, XPPlayerContacted, change.XPAwarded)
	assert.Equal(t, models.StatusContacted, change.Player.Status)
	assert.False(t, change.DispatchTrial)
	assert.False(t, change.Placement)
	assert.Equal(t, XPPlayerContacted, scoutXP(t, "pl1"))
}

func TestChangeStatus_SkipAheadPaysNothing(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl2")
	createPlayer(t, "pl2-p", "pl2", models.StatusLead)

	// Lead -> Interested skips Contacted
	change, err := ChangeStatus("pl2", "pl2-p", models.StatusInterested)
	assert.NoError(t, err)
	assert.Equal(t, 0, change.XPAwarded)
	assert.Equal(t, models.StatusInterested, change.Player.Status)
	assert.Equal(t, 0, scoutXP(t, "pl2"))
}

func TestChangeStatus_PlacedPaysFromAnyStage(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl3")
	createPlayer(t, "pl3-p", "pl3", models.StatusContacted)

	change, err := ChangeStatus("pl3", "pl3-p", models.StatusPlaced)
	assert.NoError(t, err)
	assert.Equal(t, XPPlacement, change.XPAwarded)
	assert.True(t, change.Placement)

	var scout models.Scout
	database.DB.First(&scout, "id = ?", "pl3")
	assert.Equal(t, 1, scout.PlacementsCount)
	assert.Equal(t, XPPlacement, scout.XPTotal)
}

func TestChangeStatus_RevisitedStageNeverPaysTwice(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl4")
	createPlayer(t, "pl4-p", "pl4", models.StatusLead)

	_, err := ChangeStatus("pl4", "pl4-p", models.StatusContacted)
	assert.NoError(t, err)
	_, err = ChangeStatus("pl4", "pl4-p", models.StatusInterested)
	assert.NoError(t, err)

	// Move back, then forward through already-visited stages
	_, err = ChangeStatus("pl4", "pl4-p", models.StatusLead)
	assert.NoError(t, err)
	change, err := ChangeStatus("pl4", "pl4-p", models.StatusContacted)
	assert.NoError(t, err)
	assert.Equal(t, 0, change.XPAwarded)
	change, err = ChangeStatus("pl4", "pl4-p", models.StatusInterested)
	assert.NoError(t, err)
	assert.Equal(t, 0, change.XPAwarded)

	assert.Equal(t, XPPlayerContacted+XPPlayerInterested, scoutXP(t, "pl4"))
}

func TestChangeStatus_DoubleSubmitPlacedIsNoop(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl5")
	createPlayer(t, "pl5-p", "pl5", models.StatusOffered)

	first, err := ChangeStatus("pl5", "pl5-p", models.StatusPlaced)
	assert.NoError(t, err)
	assert.Equal(t, XPPlacement, first.XPAwarded)

	second, err := ChangeStatus("pl5", "pl5-p", models.StatusPlaced)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.XPAwarded)
	assert.False(t, second.Placement)

	var scout models.Scout
	database.DB.First(&scout, "id = ?", "pl5")
	assert.Equal(t, 1, scout.PlacementsCount)
	assert.Equal(t, XPPlacement, scout.XPTotal)
}

func TestChangeStatus_OfferedFlagsTrialDispatch(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl6")
	createPlayer(t, "pl6-p", "pl6", models.StatusInterested)

	change, err := ChangeStatus("pl6", "pl6-p", models.StatusOffered)
	assert.NoError(t, err)
	assert.Equal(t, XPPlayerOffered, change.XPAwarded)
	assert.True(t, change.DispatchTrial)
}

func TestChangeStatus_WrongScoutOrUnknownStatus(t *testing.T) {
	SetupTestDB()
	createScout(t, "pl7")
	createScout(t, "pl7b")
	createPlayer(t, "pl7-p", "pl7", models.StatusLead)

	_, err := ChangeStatus("pl7b", "pl7-p", models.StatusContacted)
	assert.Error(t, err)

	_, err = ChangeStatus("pl7", "pl7-p", models.PlayerStatus("SIGNED"))
	assert.Error(t, err)
}

func TestPlayerAddBonus(t *testing.T) {
	bare := &models.Player{Name: "Bare"}
	total, parts := PlayerAddBonus(bare)
	assert.Equal(t, XPPlayerLogged, total)
	assert.Len(t, parts, 1)

	full := &models.Player{
		Name:        "Full",
		Position:    "ST",
		Club:        "FC Test",
		GradYear:    2027,
		GPA:         3.5,
		VideoURL:    "https://example.com/clip.mp4",
		ParentEmail: "parent@example.com",
	}
	total, parts = PlayerAddBonus(full)
	assert.Equal(t, XPPlayerLogged+XPPlayerVideo+XPPlayerCompleteProfile+XPPlayerParentContact, total)
	assert.Len(t, parts, 4)
}

func TestRecordOutreach_FirstMessageAutoAdvancesLead(t *testing.T) {
	SetupTestDB()
	createScout(t, "or1")
	createPlayer(t, "or1-p", "or1", models.StatusLead)

	res, err := RecordOutreach("or1", "or1-p", "EMAIL", "Hi, saw your match on Saturday")
	assert.NoError(t, err)
	assert.True(t, res.FirstOutreach)
	assert.Equal(t, XPFirstOutreach, res.FirstXP)
	assert.NotNil(t, res.AutoAdvance)
	assert.Equal(t, XPPlayerContacted, res.AutoAdvance.XPAwarded)

	var player models.Player
	database.DB.First(&player, "id = ?", "or1-p")
	assert.Equal(t, models.StatusContacted, player.Status)

	assert.Equal(t, XPFirstOutreach+XPPlayerContacted, scoutXP(t, "or1"))
}

func TestRecordOutreach_SecondMessagePaysNothing(t *testing.T) {
	SetupTestDB()
	createScout(t, "or2")
	createPlayer(t, "or2-p", "or2", models.StatusLead)

	_, err := RecordOutreach("or2", "or2-p", "EMAIL", "first")
	assert.NoError(t, err)
	xpAfterFirst := scoutXP(t, "or2")

	res, err := RecordOutreach("or2", "or2-p", "SMS", "second")
	assert.NoError(t, err)
	assert.False(t, res.FirstOutreach)
	assert.Nil(t, res.AutoAdvance)
	assert.Equal(t, xpAfterFirst, scoutXP(t, "or2"))

	var count int64
	database.DB.Model(&models.OutreachMessage{}).Where("player_id = ?", "or2-p").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestRecordOutreach_FirstMessageToNonLeadSkipsAdvance(t *testing.T) {
	SetupTestDB()
	createScout(t, "or3")
	createPlayer(t, "or3-p", "or3", models.StatusInterested)

	res, err := RecordOutreach("or3", "or3-p", "CALL", "checking in")
	assert.NoError(t, err)
	assert.True(t, res.FirstOutreach)
	assert.Nil(t, res.AutoAdvance)

	var player models.Player
	database.DB.First(&player, "id = ?", "or3-p")
	assert.Equal(t, models.StatusInterested, player.Status)
}

func TestEventAward(t *testing.T) {
	xp, reason := EventAward(models.EventRoleHost)
	assert.Equal(t, XPEventHosted, xp)
	assert.Equal(t, ReasonEventHosted, reason)

	xp, reason = EventAward(models.EventRoleAttendee)
	assert.Equal(t, XPEventAttended, xp)
	assert.Equal(t, ReasonEventAttended, reason)
}
