package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "INFO"
	NotificationTypeSuccess NotificationType = "SUCCESS"
	NotificationTypeAlert   NotificationType = "ALERT"
)

type Notification struct {
	ID      string           `gorm:"primaryKey;type:text" json:"id"`
	ScoutID string           `gorm:"index;type:text;not null" json:"scoutId"`
	Type    NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Title   string           `json:"title"`
	Message string           `gorm:"type:text" json:"message"`

	// Optional link back to the record that produced the notification
	PlayerID *string `gorm:"index;type:text" json:"playerId,omitempty"`
	EventID  *string `gorm:"index;type:text" json:"eventId,omitempty"`

	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`

	Scout Scout `gorm:"foreignKey:ScoutID" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return
}
