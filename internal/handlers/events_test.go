package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateEvent_HostPaysHostAward(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e1")

	c, w := testContext(t, "e1", "POST", "/api/events", EventInput{
		Title:     "Spring Showcase",
		Location:  "Munich",
		StartTime: time.Now().Add(48 * time.Hour),
		EndTime:   time.Now().Add(52 * time.Hour),
		Role:      models.EventRoleHost,
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Event     models.ScoutingEvent `json:"event"`
		XPAwarded int                  `json:"xpAwarded"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, services.XPEventHosted, response.XPAwarded)

	var scout models.Scout
	database.DB.First(&scout, "id = ?", "e1")
	assert.Equal(t, services.XPEventHosted, scout.XPTotal)
}

func TestCreateEvent_AttendeePaysLess(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e2")

	c, w := testContext(t, "e2", "POST", "/api/events", EventInput{
		Title: "Regional ID Camp",
		Role:  models.EventRoleAttendee,
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		XPAwarded int `json:"xpAwarded"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, services.XPEventAttended, response.XPAwarded)
}

func TestCreateEvent_InvalidRole(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e3")

	c, w := testContext(t, "e3", "POST", "/api/events", EventInput{
		Title: "Mystery Meetup",
		Role:  "SPECTATOR",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), pointLogCount("e3"))
}

func TestAddAttendee_DuplicateRejected(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e4")

	event := models.ScoutingEvent{ID: "e4-ev", ScoutID: "e4", Title: "Trial Day", Role: models.EventRoleHost}
	database.DB.Create(&event)
	player := models.Player{ID: "e4-p", ScoutID: "e4", Name: "Trialist"}
	database.DB.Create(&player)

	first, w1 := testContext(t, "e4", "POST", "/api/events/e4-ev/attendees", AttendeeInput{PlayerID: "e4-p"})
	first.Params = gin.Params{{Key: "id", Value: "e4-ev"}}
	AddAttendee(first)
	assert.Equal(t, http.StatusCreated, w1.Code)

	second, w2 := testContext(t, "e4", "POST", "/api/events/e4-ev/attendees", AttendeeInput{PlayerID: "e4-p"})
	second.Params = gin.Params{{Key: "id", Value: "e4-ev"}}
	AddAttendee(second)
	assert.Equal(t, http.StatusConflict, w2.Code)
}

func TestGenerateEventPlan_DegradesWithoutAI(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e5")

	event := models.ScoutingEvent{ID: "e5-ev", ScoutID: "e5", Title: "Summer Combine", Role: models.EventRoleHost}
	database.DB.Create(&event)

	c, w := testContext(t, "e5", "POST", "/api/events/e5-ev/plan", nil)
	c.Params = gin.Params{{Key: "id", Value: "e5-ev"}}

	GenerateEventPlan(c)

	// No AI client configured: the request still succeeds with the fallback
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Degraded bool `json:"degraded"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Degraded)
}

func TestToggleChecklistItem(t *testing.T) {
	SetupTestDB()
	mustCreateScout(t, "e6")

	event := models.ScoutingEvent{ID: "e6-ev", ScoutID: "e6", Title: "Open Training", Role: models.EventRoleHost}
	database.DB.Create(&event)
	item := models.EventChecklistItem{ID: "e6-item", EventID: "e6-ev", Task: "Book pitch"}
	database.DB.Create(&item)

	c, w := testContext(t, "e6", "PATCH", "/api/events/e6-ev/checklist/e6-item", nil)
	c.Params = gin.Params{{Key: "id", Value: "e6-ev"}, {Key: "itemId", Value: "e6-item"}}

	ToggleChecklistItem(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.EventChecklistItem
	database.DB.First(&fresh, "id = ?", "e6-item")
	assert.True(t, fresh.Completed)
}
