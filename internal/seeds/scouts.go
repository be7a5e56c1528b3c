package seeds

import (
	"log"
	"time"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func GetOrCreateDemoScout() (models.Scout, error) {
	log.Println("👤 Checking Demo Scout...")

	email := "demo@warubi-sports.com"

	var scout models.Scout
	err := database.DB.Where("email = ?", email).First(&scout).Error

	if err == nil {
		log.Printf("   ✅ Demo Scout found: %s", scout.Name)
		return scout, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("WarubiDemo2026!"), bcrypt.DefaultCost)

	scout = models.Scout{
		ID:           uuid.New().String(),
		Name:         "Jordan Meyer",
		Email:        email,
		Password:     string(hash),
		Role:         models.RoleScout,
		Region:       "Bavaria",
		Organization: "Warubi Sports",
		Image:        "https://api.dicebear.com/7.x/identicon/svg?seed=warubi-demo",
		Level:        1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := database.DB.Create(&scout).Error; err != nil {
		return models.Scout{}, err
	}

	log.Printf("   ✅ Demo Scout Created: %s", scout.Name)
	return scout, nil
}

func SeedDemoPlayers(scout models.Scout) {
	log.Println("⚽ Seeding Demo Players...")

	var count int64
	database.DB.Model(&models.Player{}).Where("scout_id = ?", scout.ID).Count(&count)
	if count > 0 {
		log.Printf("   ℹ️ Scout already has %d players, skipping", count)
		return
	}

	players := []models.Player{
		{
			Name:             "Lukas Brandt",
			Position:         "CM",
			Club:             "TSV München 1860 U19",
			GradYear:         2027,
			GPA:              3.6,
			CompetitionLevel: "U19 Bundesliga",
			ParentEmail:      "brandt.family@example.com",
			Status:           models.StatusContacted,
		},
		{
			Name:     "Tomás Herrera",
			Position: "LW",
			Club:     "CD Ebro Juvenil",
			GradYear: 2026,
			GPA:      3.2,
			Status:   models.StatusLead,
		},
		{
			Name:             "Emeka Obi",
			Position:         "CB",
			Club:             "Right to Dream Academy",
			GradYear:         2026,
			GPA:              3.9,
			CompetitionLevel: "Academy First Team",
			ParentPhone:      "+233200000000",
			Status:           models.StatusInterested,
		},
	}

	for i := range players {
		players[i].ScoutID = scout.ID
		players[i].HighestStage = models.StageIndex(players[i].Status)
		if err := database.DB.Create(&players[i]).Error; err != nil {
			log.Printf("   ❌ Failed to create player %s: %v", players[i].Name, err)
		} else {
			log.Printf("   ⚽ Player Created: %s (%s)", players[i].Name, players[i].Status)
		}
	}
}
