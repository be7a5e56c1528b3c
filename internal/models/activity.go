package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityPlayerAdded   ActivityType = "PLAYER_ADDED"
	ActivityPlayerPlaced  ActivityType = "PLAYER_PLACED"
	ActivityStatusChanged ActivityType = "STATUS_CHANGED"
	ActivityEventCreated  ActivityType = "EVENT_CREATED"
	ActivityBadgeUnlocked ActivityType = "BADGE_UNLOCKED"
	ActivityOutreachSent  ActivityType = "OUTREACH_SENT"
)

type ScoutActivity struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	Type      ActivityType `gorm:"type:text;not null" json:"type"`
	ScoutID   string       `gorm:"index;not null" json:"scoutId"`
	Scout     Scout        `gorm:"foreignKey:ScoutID" json:"scout"`
	TargetID  string       `gorm:"index" json:"targetId"` // Player ID, Event ID, Badge ID
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (ScoutActivity) TableName() string {
	return "scout_activities"
}

func (a *ScoutActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return
}
