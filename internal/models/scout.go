package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleScout Role = "SCOUT"
	RoleAdmin Role = "ADMIN"
)

type Scout struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Image        string `json:"image"`
	Region       string `json:"region"`
	Organization string `json:"organization"`

	Role Role `gorm:"type:text;default:'SCOUT'" json:"role"`

	// Gamification state. XPTotal only ever grows; Level is derived from it
	// on every award and stored for cheap reads.
	XPTotal         int `gorm:"default:0" json:"xpTotal"`
	Level           int `gorm:"default:1" json:"level"`
	PlacementsCount int `gorm:"default:0" json:"placementsCount"`

	Password string `json:"-"`
}

func (Scout) TableName() string {
	return "scouts"
}
