package handlers

import (
	"net/http"
	"strconv"

	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetMe GET /me
func GetMe(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var scout models.Scout
	if err := database.DB.First(&scout, "id = ?", scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scout not found"})
		return
	}

	stats, err := services.CollectStats(database.DB, scout.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scout": scout, "stats": stats})
}

type ProfileInput struct {
	Name         string `json:"name"`
	Region       string `json:"region"`
	Organization string `json:"organization"`
	Image        string `json:"image"`
}

// UpdateMe PUT /me
func UpdateMe(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var scout models.Scout
	if err := database.DB.First(&scout, "id = ?", scoutID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scout not found"})
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		scout.Name = input.Name
	}
	scout.Region = input.Region
	scout.Organization = input.Organization
	if input.Image != "" {
		scout.Image = input.Image
	}

	if err := database.DB.Save(&scout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scout": scout})
}

// GetPointHistory GET /me/points
func GetPointHistory(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	history, err := services.GetPointHistory(scoutID.(string), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch point history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetActivityFeed GET /me/activity
func GetActivityFeed(c *gin.Context) {
	scoutID, exists := c.Get("scoutId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	feed, err := services.GetActivityFeed(scoutID.(string), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": feed})
}
