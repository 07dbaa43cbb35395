package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type PlaygroupInput struct {
	Name        string `json:"name" binding:"required,max=100" example:"Monday Magic"`
	Description string `json:"description" binding:"max=500" example:"Commander night, every Monday"`
}

type PlaygroupResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
	MemberCount int64     `json:"member_count"`
	GameCount   int64     `json:"game_count"`
}

type PlaygroupMemberResponse struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
	IsActive    bool      `json:"is_active"`
}

func newPlaygroupResponse(playgroup models.Playgroup) PlaygroupResponse {
	// Live counts, re-queried on every response.
	var memberCount, gameCount int64
	database.DB.Model(&models.PlaygroupMember{}).
		Where("playgroup_id = ? AND is_active = ?", playgroup.ID, true).
		Count(&memberCount)
	database.DB.Model(&models.Game{}).
		Where("playgroup_id = ?", playgroup.ID).
		Count(&gameCount)

	return PlaygroupResponse{
		ID:          playgroup.ID,
		Name:        playgroup.Name,
		Description: playgroup.Description,
		OwnerID:     playgroup.OwnerID,
		OwnerName:   playgroup.Owner.DisplayName,
		CreatedAt:   playgroup.CreatedAt,
		IsActive:    playgroup.IsActive,
		MemberCount: memberCount,
		GameCount:   gameCount,
	}
}

func newPlaygroupMemberResponse(member models.PlaygroupMember) PlaygroupMemberResponse {
	return PlaygroupMemberResponse{
		ID:          member.ID,
		UserID:      member.UserID,
		UserName:    member.User.UserName,
		DisplayName: member.User.DisplayName,
		JoinedAt:    member.JoinedAt,
		IsActive:    member.IsActive,
	}
}

// endregion

// region --- Playgroup Handlers ---

// GetMyPlaygroups godoc
// @Summary      List the caller's playgroups
// @Description  Returns every playgroup where the caller holds an active membership, with live member and game counts.
// @Tags         playgroups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlaygroupResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /playgroups [get]
func GetMyPlaygroups(c *gin.Context) {
	userID, _ := c.Get("userID")

	var memberships []models.PlaygroupMember
	if err := database.DB.
		Preload("Playgroup.Owner").
		Where("user_id = ? AND is_active = ?", userID.(string), true).
		Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve playgroups"})
		return
	}

	response := []PlaygroupResponse{}
	for _, membership := range memberships {
		response = append(response, newPlaygroupResponse(membership.Playgroup))
	}

	c.JSON(http.StatusOK, response)
}

// CreatePlaygroup godoc
// @Summary      Create a playgroup
// @Description  Creates a playgroup; the caller becomes its owner and sole member.
// @Tags         playgroups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PlaygroupInput true "Playgroup Info"
// @Success      201  {object}  PlaygroupResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /playgroups [post]
func CreatePlaygroup(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input PlaygroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playgroup := models.Playgroup{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     userID.(string),
		IsActive:    true,
	}

	// The playgroup and its owner membership must appear together.
	tx := database.DB.Begin()

	if err := tx.Create(&playgroup).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playgroup"})
		return
	}

	member := models.PlaygroupMember{
		PlaygroupID: playgroup.ID,
		UserID:      userID.(string),
		JoinedAt:    time.Now().UTC(),
		IsActive:    true,
	}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add owner membership"})
		return
	}

	tx.Commit()

	database.DB.Preload("Owner").First(&playgroup, playgroup.ID)

	c.JSON(http.StatusCreated, newPlaygroupResponse(playgroup))
}

// GetPlaygroup godoc
// @Summary      Get a playgroup by ID
// @Description  Returns playgroup details. Non-members receive the same not-found response as for an absent playgroup.
// @Tags         playgroups
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Playgroup ID"
// @Success      200 {object} PlaygroupResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Playgroup not found or no access"
// @Router       /playgroups/{id} [get]
func GetPlaygroup(c *gin.Context) {
	userID, _ := c.Get("userID")
	playgroupID, _ := strconv.Atoi(c.Param("id"))

	var playgroup models.Playgroup
	if err := database.DB.Preload("Owner").First(&playgroup, playgroupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playgroup not found or you don't have access"})
		return
	}

	// Identical response for "absent" and "not a member", no existence leak.
	if !isActiveMember(database.DB, playgroup.ID, userID.(string)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playgroup not found or you don't have access"})
		return
	}

	c.JSON(http.StatusOK, newPlaygroupResponse(playgroup))
}

// endregion

// region --- Membership Handlers ---

// GetPlaygroupMembers godoc
// @Summary      List playgroup members
// @Description  Returns the active members of a playgroup. Non-members get an empty list, not an error.
// @Tags         playgroups
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Playgroup ID"
// @Success      200 {array} PlaygroupMemberResponse
// @Failure      401 {object} ErrorResponse
// @Router       /playgroups/{id}/members [get]
func GetPlaygroupMembers(c *gin.Context) {
	userID, _ := c.Get("userID")
	playgroupID, _ := strconv.Atoi(c.Param("id"))

	response := []PlaygroupMemberResponse{}

	if !isActiveMember(database.DB, uint(playgroupID), userID.(string)) {
		c.JSON(http.StatusOK, response)
		return
	}

	var members []models.PlaygroupMember
	if err := database.DB.
		Preload("User").
		Where("playgroup_id = ? AND is_active = ?", playgroupID, true).
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	for _, member := range members {
		response = append(response, newPlaygroupMemberResponse(member))
	}

	c.JSON(http.StatusOK, response)
}

// AddMember godoc
// @Summary      Add a member to a playgroup (Owner only)
// @Description  Adds or reactivates a member. Adding an already-active member succeeds as a no-op.
// @Tags         playgroups
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Playgroup ID"
// @Param        userId path string true "User ID of the member to add"
// @Success      200 {object} map[string]string "{"message": "Member added successfully"}"
// @Failure      400 {object} ErrorResponse "Not the owner, or the member could not be added"
// @Failure      401 {object} ErrorResponse
// @Router       /playgroups/{id}/members/{userId} [post]
func AddMember(c *gin.Context) {
	requestingUserID, _ := c.Get("userID")
	playgroupID, _ := strconv.Atoi(c.Param("id"))
	targetUserID := c.Param("userId")

	var playgroup models.Playgroup
	err := database.DB.First(&playgroup, playgroupID).Error
	if err != nil || playgroup.OwnerID != requestingUserID.(string) {
		// One answer for "no such playgroup" and "not the owner".
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to add member"})
		return
	}

	var existing models.PlaygroupMember
	err = database.DB.
		Where("playgroup_id = ? AND user_id = ?", playgroupID, targetUserID).
		First(&existing).Error

	switch {
	case err == nil && existing.IsActive:
		// Already an active member, idempotent success.
		c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
		return

	case err == nil:
		// Reactivate the soft-deleted row instead of inserting a duplicate.
		updates := map[string]interface{}{
			"is_active": true,
			"joined_at": time.Now().UTC(),
		}
		if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
		return
	}

	member := models.PlaygroupMember{
		PlaygroupID: uint(playgroupID),
		UserID:      targetUserID,
		JoinedAt:    time.Now().UTC(),
		IsActive:    true,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		// A concurrent add won the race on the unique (playgroup, user)
		// index; that still means the target is a member now.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to add member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
}

// RemoveMember godoc
// @Summary      Remove a member from a playgroup
// @Description  Deactivates a membership. Allowed for the owner, or for any member removing themselves.
// @Tags         playgroups
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Playgroup ID"
// @Param        userId path string true "User ID of the member to remove"
// @Success      200 {object} map[string]string "{"message": "Member removed successfully"}"
// @Failure      400 {object} ErrorResponse "No permission or no active membership"
// @Failure      401 {object} ErrorResponse
// @Router       /playgroups/{id}/members/{userId} [delete]
func RemoveMember(c *gin.Context) {
	requestingUserID, _ := c.Get("userID")
	playgroupID, _ := strconv.Atoi(c.Param("id"))
	targetUserID := c.Param("userId")

	var playgroup models.Playgroup
	err := database.DB.First(&playgroup, playgroupID).Error
	if err != nil || (playgroup.OwnerID != requestingUserID.(string) && targetUserID != requestingUserID.(string)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to remove member"})
		return
	}

	var member models.PlaygroupMember
	if err := database.DB.
		Where("playgroup_id = ? AND user_id = ? AND is_active = ?", playgroupID, targetUserID, true).
		First(&member).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to remove member"})
		return
	}

	// Soft-delete: the row stays, join history included.
	if err := database.DB.Model(&member).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// endregion
