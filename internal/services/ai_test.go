package services

import (
	"testing"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestApplyEvaluation_PersistsEveryField(t *testing.T) {
	SetupTestDB()
	createScout(t, "ai1")

	player := models.Player{ID: "ai1-p", ScoutID: "ai1", Name: "Trequartista", Status: models.StatusLead, Recalibrating: true}
	database.DB.Create(&player)

	eval := &PlayerEvaluation{
		Score:               82,
		CollegeLevel:        "D1",
		ScholarshipTier:     "Partial",
		RecommendedPathways: []string{"NCAA D1", "USL Academy"},
		Strengths:           []string{"Vision", "First touch"},
		Weaknesses:          []string{"Aerial duels"},
		NextAction:          "Schedule campus visit",
		Summary:             "High-ceiling playmaker.",
	}
	assert.NoError(t, ApplyEvaluation("ai1-p", eval))

	var fresh models.Player
	database.DB.First(&fresh, "id = ?", "ai1-p")
	if assert.NotNil(t, fresh.EvalScore) {
		assert.Equal(t, 82, *fresh.EvalScore)
	}
	assert.Equal(t, "D1", fresh.CollegeLevel)
	assert.Equal(t, "Partial", fresh.ScholarshipTier)
	assert.Equal(t, pq.StringArray{"NCAA D1", "USL Academy"}, fresh.RecommendedPathways)
	assert.Equal(t, pq.StringArray{"Vision", "First touch"}, fresh.Strengths)
	assert.Equal(t, pq.StringArray{"Aerial duels"}, fresh.Weaknesses)
	assert.Equal(t, "Schedule campus visit", fresh.NextAction)
	assert.Equal(t, "High-ceiling playmaker.", fresh.EvalSummary)
	assert.False(t, fresh.Recalibrating)
}

func TestApplyEvaluation_NilArraysStoreEmpty(t *testing.T) {
	SetupTestDB()
	createScout(t, "ai2")

	player := models.Player{ID: "ai2-p", ScoutID: "ai2", Name: "Keeper", Status: models.StatusLead}
	database.DB.Create(&player)

	assert.NoError(t, ApplyEvaluation("ai2-p", &PlayerEvaluation{Score: 40, Summary: "Raw."}))

	var fresh models.Player
	database.DB.First(&fresh, "id = ?", "ai2-p")
	assert.Equal(t, pq.StringArray{}, fresh.RecommendedPathways)
	assert.Empty(t, fresh.Strengths)
	assert.Empty(t, fresh.Weaknesses)
}
