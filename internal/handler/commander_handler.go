package handler

import (
	"net/http"
	"time"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CommanderResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Colors      string    `json:"colors,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCommanderResponse(commander models.Commander) CommanderResponse {
	return CommanderResponse{
		ID:          commander.ID,
		Name:        commander.Name,
		Colors:      commander.Colors,
		Description: commander.Description,
		ImageURL:    commander.ImageURL,
		CreatedAt:   commander.CreatedAt,
	}
}

// GetCommanders godoc
// @Summary      Get the commander catalog
// @Description  Retrieves all commanders, ordered by name.
// @Tags         commanders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CommanderResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /commanders [get]
func GetCommanders(c *gin.Context) {
	var commanders []models.Commander
	if err := database.DB.Order("name").Find(&commanders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve commanders"})
		return
	}

	response := []CommanderResponse{}
	for _, commander := range commanders {
		response = append(response, newCommanderResponse(commander))
	}
	c.JSON(http.StatusOK, response)
}
