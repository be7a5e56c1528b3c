package handlers

import (
	"net/http"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/errors"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListScouts GET /admin/scouts
// Full roster with gamification totals, for the ops dashboard.
func ListScouts(c *gin.Context) {
	var scouts []models.Scout
	if err := database.DB.Order("xp_total DESC").Find(&scouts).Error; err != nil {
		c.Error(errors.Internal("Failed to fetch scouts"))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"scouts": scouts})
}

type BadgeInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        string `json:"tier" binding:"required"`
	Category    string `json:"category" binding:"required"`
	StatType    string `json:"statType" binding:"required"`
	Threshold   int    `json:"threshold" binding:"required,gt=0"`
	XPBonus     int    `json:"xpBonus"`
}

// CreateBadge POST /admin/badges
// Extends the badge catalog. New badges are picked up on the next
// evaluation pass for every scout.
func CreateBadge(c *gin.Context) {
	var input BadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Badge
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Badge already exists"})
		return
	}

	badge := models.Badge{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Tier:        models.BadgeTier(input.Tier),
		Category:    models.BadgeCategory(input.Category),
		StatType:    models.StatType(input.StatType),
		Threshold:   input.Threshold,
		XPBonus:     input.XPBonus,
	}

	if err := database.DB.Create(&badge).Error; err != nil {
		c.Error(errors.Internal("Failed to create badge"))
		c.Abort()
		return
	}

	logger.Info().Str("badge", badge.Name).Msg("Badge added to catalog")
	c.JSON(http.StatusCreated, gin.H{"badge": badge})
}
