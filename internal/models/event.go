package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventRole string

const (
	EventRoleHost     EventRole = "HOST"
	EventRoleAttendee EventRole = "ATTENDEE"
)

// ScoutingEvent is a showcase, camp or trial the scout hosts or attends.
type ScoutingEvent struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ScoutID string `gorm:"index;type:text;not null" json:"scoutId"`
	Scout   Scout  `gorm:"foreignKey:ScoutID" json:"-"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`

	Role EventRole `gorm:"type:text;not null" json:"role"`

	// AI-generated plan; empty when generation failed or was never requested
	MarketingCopy string         `json:"marketingCopy"`
	Agenda        pq.StringArray `gorm:"type:text[]" json:"agenda"`

	Checklist []EventChecklistItem `gorm:"foreignKey:EventID" json:"checklist,omitempty"`
	Attendees []EventAttendee      `gorm:"foreignKey:EventID" json:"attendees,omitempty"`
}

func (ScoutingEvent) TableName() string {
	return "scouting_events"
}

func (e *ScoutingEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

type EventChecklistItem struct {
	ID        string `gorm:"primaryKey;type:text" json:"id"`
	EventID   string `gorm:"index;type:text;not null" json:"eventId"`
	Task      string `json:"task"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (EventChecklistItem) TableName() string {
	return "event_checklist_items"
}

func (i *EventChecklistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

// EventAttendee is a join row for players brought to an event.
type EventAttendee struct {
	ID       string    `gorm:"primaryKey;type:text" json:"id"`
	EventID  string    `gorm:"index;type:text;not null" json:"eventId"`
	PlayerID string    `gorm:"index;type:text;not null" json:"playerId"`
	Player   Player    `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (EventAttendee) TableName() string {
	return "event_attendees"
}

func (a *EventAttendee) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
