package seeds

import (
	"log"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/google/uuid"
)

func SeedBadges() {
	log.Println("🎖️ Seeding Scout Badges...")

	badges := []models.Badge{
		// Pipeline
		{
			Name:        "Talent Spotter",
			Description: "Logged your first player.",
			Icon:        "search",
			Tier:        models.BadgeTierBronze,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlayersAdded,
			Threshold:   1,
			XPBonus:     10,
		},
		{
			Name:        "Pipeline Builder",
			Description: "Logged 10 players into your pipeline.",
			Icon:        "users",
			Tier:        models.BadgeTierSilver,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlayersAdded,
			Threshold:   10,
			XPBonus:     50,
		},
		{
			Name:        "Network Architect",
			Description: "Logged 50 players. Your pipeline is deep.",
			Icon:        "network",
			Tier:        models.BadgeTierGold,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlayersAdded,
			Threshold:   50,
			XPBonus:     150,
		},
		{
			Name:        "First Placement",
			Description: "Placed your first player with a college program.",
			Icon:        "graduation-cap",
			Tier:        models.BadgeTierSilver,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlacements,
			Threshold:   1,
			XPBonus:     50,
		},
		{
			Name:        "Dealmaker",
			Description: "Placed 5 players. Programs are taking your calls.",
			Icon:        "handshake",
			Tier:        models.BadgeTierGold,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlacements,
			Threshold:   5,
			XPBonus:     200,
		},
		{
			Name:        "Placement Legend",
			Description: "Placed 25 players. A career built on results.",
			Icon:        "crown",
			Tier:        models.BadgeTierPlatinum,
			Category:    models.BadgeCategoryPipeline,
			StatType:    models.StatPlacements,
			Threshold:   25,
			XPBonus:     500,
		},

		// Events
		{
			Name:        "Event Host",
			Description: "Hosted your first scouting event.",
			Icon:        "calendar",
			Tier:        models.BadgeTierBronze,
			Category:    models.BadgeCategoryEvents,
			StatType:    models.StatEventsHosted,
			Threshold:   1,
			XPBonus:     20,
		},
		{
			Name:        "Showcase Veteran",
			Description: "Hosted 10 scouting events.",
			Icon:        "megaphone",
			Tier:        models.BadgeTierGold,
			Category:    models.BadgeCategoryEvents,
			StatType:    models.StatEventsHosted,
			Threshold:   10,
			XPBonus:     150,
		},
		{
			Name:        "On the Road",
			Description: "Attended 5 events as a visiting scout.",
			Icon:        "map-pin",
			Tier:        models.BadgeTierSilver,
			Category:    models.BadgeCategoryEvents,
			StatType:    models.StatEventsAttended,
			Threshold:   5,
			XPBonus:     50,
		},

		// Milestones
		{
			Name:        "Rising Scout",
			Description: "Reached 500 total XP.",
			Icon:        "trending-up",
			Tier:        models.BadgeTierBronze,
			Category:    models.BadgeCategoryMilestones,
			StatType:    models.StatXPTotal,
			Threshold:   500,
			XPBonus:     25,
		},
		{
			Name:        "Seasoned Scout",
			Description: "Reached 2,500 total XP.",
			Icon:        "award",
			Tier:        models.BadgeTierSilver,
			Category:    models.BadgeCategoryMilestones,
			StatType:    models.StatXPTotal,
			Threshold:   2500,
			XPBonus:     100,
		},
		{
			Name:        "Elite Scout",
			Description: "Reached level 25.",
			Icon:        "star",
			Tier:        models.BadgeTierGold,
			Category:    models.BadgeCategoryMilestones,
			StatType:    models.StatLevel,
			Threshold:   25,
			XPBonus:     250,
		},
		{
			Name:        "Hall of Fame",
			Description: "Reached level 50. Few ever do.",
			Icon:        "trophy",
			Tier:        models.BadgeTierPlatinum,
			Category:    models.BadgeCategoryMilestones,
			StatType:    models.StatLevel,
			Threshold:   50,
			XPBonus:     500,
		},
	}

	for _, b := range badges {
		var existing models.Badge
		if err := database.DB.Where("name = ?", b.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Badge already exists: %s", b.Name)
			continue
		}

		b.ID = uuid.New().String()
		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("   ❌ Failed to create badge %s: %v", b.Name, err)
		} else {
			log.Printf("   🎖️ Badge Defined: %s", b.Name)
		}
	}
}
