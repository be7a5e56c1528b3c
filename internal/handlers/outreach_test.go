package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSendOutreach_FirstMessageAutoAdvancesLead(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "o1")

	player := models.Player{ID: "o1-p", ScoutID: "o1", Name: "Paulo", Status: models.StatusLead}
	database.DB.Create(&player)

	c, w := testContext(t, "o1", "POST", "/api/players/o1-p/outreach", OutreachInput{
		Channel: "EMAIL",
		Content: "Hi Paulo, I caught your match on Saturday.",
	})
	c.Params = gin.Params{{Key: "id", Value: "o1-p"}}

	SendOutreach(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		XPAwarded int `json:"xpAwarded"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, services.XPFirstOutreach+services.XPPlayerContacted, response.XPAwarded)

	var fresh models.Player
	database.DB.First(&fresh, "id = ?", "o1-p")
	assert.Equal(t, models.StatusContacted, fresh.Status)

	// Two awards, two notifications
	var notifCount int64
	database.DB.Model(&models.Notification{}).Where("scout_id = ?", "o1").Count(&notifCount)
	assert.Equal(t, int64(2), notifCount)
	assert.Equal(t, int64(2), pointLogCount("o1"))
}

func TestSendOutreach_SecondMessageIsJustLogged(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "o2")

	player := models.Player{ID: "o2-p", ScoutID: "o2", Name: "Milan", Status: models.StatusLead}
	database.DB.Create(&player)

	first, w1 := testContext(t, "o2", "POST", "/api/players/o2-p/outreach", OutreachInput{Content: "first"})
	first.Params = gin.Params{{Key: "id", Value: "o2-p"}}
	SendOutreach(first)
	assert.Equal(t, http.StatusCreated, w1.Code)

	second, w2 := testContext(t, "o2", "POST", "/api/players/o2-p/outreach", OutreachInput{Content: "second"})
	second.Params = gin.Params{{Key: "id", Value: "o2-p"}}
	SendOutreach(second)
	assert.Equal(t, http.StatusCreated, w2.Code)

	var response struct {
		XPAwarded int `json:"xpAwarded"`
	}
	json.Unmarshal(w2.Body.Bytes(), &response)
	assert.Equal(t, 0, response.XPAwarded)

	var msgCount int64
	database.DB.Model(&models.OutreachMessage{}).Where("player_id = ?", "o2-p").Count(&msgCount)
	assert.Equal(t, int64(2), msgCount)
}

func TestSendOutreach_UnknownPlayer(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "o3")

	c, w := testContext(t, "o3", "POST", "/api/players/ghost/outreach", OutreachInput{Content: "hello?"})
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}

	SendOutreach(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOutreach_ChronologicalForOwner(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "o4")
	mustCreateScout(t, "o4b")

	player := models.Player{ID: "o4-p", ScoutID: "o4", Name: "Theo", Status: models.StatusContacted}
	database.DB.Create(&player)
	database.DB.Create(&models.OutreachMessage{ID: "o4-m1", ScoutID: "o4", PlayerID: "o4-p", Channel: "EMAIL", Content: "intro"})
	database.DB.Create(&models.OutreachMessage{ID: "o4-m2", ScoutID: "o4", PlayerID: "o4-p", Channel: "CALL", Content: "follow-up"})

	c, w := testContext(t, "o4", "GET", "/api/players/o4-p/outreach", nil)
	c.Params = gin.Params{{Key: "id", Value: "o4-p"}}
	ListOutreach(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Messages []models.OutreachMessage `json:"messages"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Messages, 2)

	// Another scout sees an empty log, not this one
	other, w2 := testContext(t, "o4b", "GET", "/api/players/o4-p/outreach", nil)
	other.Params = gin.Params{{Key: "id", Value: "o4-p"}}
	ListOutreach(other)

	json.Unmarshal(w2.Body.Bytes(), &response)
	assert.Empty(t, response.Messages)
}
