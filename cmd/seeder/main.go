package main

import (
	"log"

	"github.com/WarubiSports/scout-backend/internal/config"
	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.Scout{},
		&models.Player{},
		&models.OutreachMessage{},
		&models.ScoutingEvent{},
		&models.EventChecklistItem{},
		&models.EventAttendee{},
		&models.Notification{},
		&models.Badge{},
		&models.ScoutBadge{},
		&models.StreakRecord{},
		&models.PointLog{},
		&models.ScoutActivity{},
	)

	seeds.SeedBadges()

	scout, err := seeds.GetOrCreateDemoScout()
	if err != nil {
		log.Fatalf("❌ Failed to create demo scout: %v", err)
	}
	seeds.SeedDemoPlayers(scout)

	log.Println("✅ Database Seeding Complete!")
}
