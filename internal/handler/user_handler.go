package handler

import (
	"net/http"
	"strconv"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PublicUserResponse is the profile subset other users may see.
type PublicUserResponse struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name"`
}

// PaginatedUserResponse defines the structure for a paginated list of users.
type PaginatedUserResponse = PaginatedResponse[PublicUserResponse]

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches users by username so playgroup owners can find members to add.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for username"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedUserResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func SearchUsers(c *gin.Context) {
	searchQuery := c.Query("q")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	offset := (page - 1) * limit

	query := database.DB.Model(&models.User{})
	if searchQuery != "" {
		query = query.Where("user_name ILIKE ?", "%"+searchQuery+"%")
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	var users []models.User
	if err := query.Order("user_name").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]PublicUserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, PublicUserResponse{
			ID:          user.ID,
			UserName:    user.UserName,
			DisplayName: user.DisplayName,
		})
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}
