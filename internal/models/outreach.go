package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutreachMessage is one append-only log entry of contact with a player
// or their family. Entries are never edited or deleted.
type OutreachMessage struct {
	ID string `gorm:"primaryKey;type:text" json:"id"`

	ScoutID  string `gorm:"index;type:text;not null" json:"scoutId"`
	PlayerID string `gorm:"index;type:text;not null" json:"playerId"`
	Player   Player `gorm:"foreignKey:PlayerID" json:"-"`

	Channel string `gorm:"type:text;default:'EMAIL'" json:"channel"` // EMAIL, SMS, CALL, IN_PERSON
	Content string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
}

func (OutreachMessage) TableName() string {
	return "outreach_messages"
}

func (m *OutreachMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	return
}
