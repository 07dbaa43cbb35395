package handler

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type GamePlayerInput struct {
	UserID      string `json:"user_id" binding:"required"`
	CommanderID *uint  `json:"commander_id"`
	Position    int    `json:"position" binding:"required,min=1,max=10"`
	Notes       string `json:"notes" binding:"max=500"`
	LifeTotal   *int   `json:"life_total"`
}

type GameInput struct {
	PlaygroupID     uint              `json:"playgroup_id" binding:"required"`
	GameDate        *time.Time        `json:"game_date"`
	Notes           string            `json:"notes" binding:"max=500"`
	DurationMinutes *int              `json:"duration_minutes"`
	Players         []GamePlayerInput `json:"players" binding:"required,min=1,dive"`
}

type GamePlayerResponse struct {
	ID              uint   `json:"id"`
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	DisplayName     string `json:"display_name"`
	CommanderID     *uint  `json:"commander_id,omitempty"`
	CommanderName   string `json:"commander_name,omitempty"`
	CommanderColors string `json:"commander_colors,omitempty"`
	Position        int    `json:"position"`
	Notes           string `json:"notes,omitempty"`
	LifeTotal       *int   `json:"life_total,omitempty"`
	IsWinner        bool   `json:"is_winner"`
}

type GameResponse struct {
	ID              uint                 `json:"id"`
	PlaygroupID     uint                 `json:"playgroup_id"`
	PlaygroupName   string               `json:"playgroup_name"`
	GameDate        time.Time            `json:"game_date"`
	Notes           string               `json:"notes,omitempty"`
	DurationMinutes *int                 `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	IsCompleted     bool                 `json:"is_completed"`
	Players         []GamePlayerResponse `json:"players"`
}

func newGameResponse(game models.Game) GameResponse {
	players := make([]GamePlayerResponse, 0, len(game.Players))
	for _, player := range game.Players {
		resp := GamePlayerResponse{
			ID:          player.ID,
			UserID:      player.UserID,
			UserName:    player.User.UserName,
			DisplayName: player.User.DisplayName,
			CommanderID: player.CommanderID,
			Position:    player.Position,
			Notes:       player.Notes,
			LifeTotal:   player.LifeTotal,
			IsWinner:    player.IsWinner(),
		}
		if player.Commander != nil {
			resp.CommanderName = player.Commander.Name
			resp.CommanderColors = player.Commander.Colors
		}
		players = append(players, resp)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Position < players[j].Position
	})

	return GameResponse{
		ID:              game.ID,
		PlaygroupID:     game.PlaygroupID,
		PlaygroupName:   game.Playgroup.Name,
		GameDate:        game.GameDate,
		Notes:           game.Notes,
		DurationMinutes: game.DurationMinutes,
		CreatedAt:       game.CreatedAt,
		IsCompleted:     game.IsCompleted,
		Players:         players,
	}
}

// loadGame fetches a game with everything newGameResponse needs resolved.
func loadGame(db *gorm.DB, gameID uint) (models.Game, error) {
	var game models.Game
	err := db.
		Preload("Playgroup").
		Preload("Players.User").
		Preload("Players.Commander").
		First(&game, gameID).Error
	return game, err
}

// endregion

// region --- Game Handlers ---

// CreateGame godoc
// @Summary      Record a completed game
// @Description  Creates a game with its ranked player results in a single transaction. The recorder must be an active member of the playgroup; the listed players need not be.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game and player results"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a member of this playgroup"
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Same answer whether the playgroup is missing or the caller was removed.
	if !isActiveMember(database.DB, input.PlaygroupID, userID.(string)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this playgroup"})
		return
	}

	gameDate := time.Now().UTC()
	if input.GameDate != nil {
		gameDate = *input.GameDate
	}

	game := models.Game{
		PlaygroupID:     input.PlaygroupID,
		GameDate:        gameDate,
		Notes:           input.Notes,
		DurationMinutes: input.DurationMinutes,
		// Games are recorded once results are known, so completed from the start.
		IsCompleted: true,
	}

	// The game and all its player rows become visible together or not at all.
	tx := database.DB.Begin()

	if err := tx.Create(&game).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	for _, playerInput := range input.Players {
		player := models.GamePlayer{
			GameID:      game.ID,
			UserID:      playerInput.UserID,
			CommanderID: playerInput.CommanderID,
			// Positions are stored as submitted; ties are allowed.
			Position:  playerInput.Position,
			Notes:     playerInput.Notes,
			LifeTotal: playerInput.LifeTotal,
		}
		if err := tx.Create(&player).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to record player results"})
			return
		}
	}

	tx.Commit()

	// Re-read after commit so the response carries resolved names.
	game, err := loadGame(database.DB, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve created game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// GetGame godoc
// @Summary      Get a game by ID
// @Description  Returns the hydrated game. Non-members of the owning playgroup receive the same not-found response as for an absent game.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found or no access"
// @Router       /games/{id} [get]
func GetGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	game, err := loadGame(database.DB, uint(gameID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found or you don't have access"})
		return
	}

	if !isActiveMember(database.DB, game.PlaygroupID, userID.(string)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found or you don't have access"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetPlaygroupGames godoc
// @Summary      List a playgroup's games
// @Description  Returns the playgroup's games, newest first. Non-members get an empty list.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        playgroupId path int true "Playgroup ID"
// @Success      200 {array} GameResponse
// @Failure      401 {object} ErrorResponse
// @Router       /games/playgroup/{playgroupId} [get]
func GetPlaygroupGames(c *gin.Context) {
	userID, _ := c.Get("userID")
	playgroupID, _ := strconv.Atoi(c.Param("playgroupId"))

	response := []GameResponse{}

	if !isActiveMember(database.DB, uint(playgroupID), userID.(string)) {
		c.JSON(http.StatusOK, response)
		return
	}

	var games []models.Game
	if err := database.DB.
		Preload("Playgroup").
		Preload("Players.User").
		Preload("Players.Commander").
		Where("playgroup_id = ?", playgroupID).
		Order("game_date DESC").
		Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, response)
}

// CompleteGame godoc
// @Summary      Mark a game as completed
// @Description  Idempotent completed-flag set, limited to active members of the owning playgroup.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game completed successfully"}"
// @Failure      400 {object} ErrorResponse "Game missing or no access"
// @Failure      401 {object} ErrorResponse
// @Router       /games/{id}/complete [put]
func CompleteGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, gameID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to complete game. Game may not exist or you may not have access."})
		return
	}

	if !isActiveMember(database.DB, game.PlaygroupID, userID.(string)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to complete game. Game may not exist or you may not have access."})
		return
	}

	if err := database.DB.Model(&game).Update("is_completed", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game completed successfully"})
}

// endregion

// region --- Stats Handlers ---

// GetMyStats godoc
// @Summary      Get the caller's win/loss statistics
// @Description  Aggregates the caller's completed games, optionally filtered to a single playgroup.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        playgroupId query int false "Restrict stats to this playgroup"
// @Success      200 {object} PlayerStatsResponse
// @Failure      401 {object} ErrorResponse
// @Router       /games/stats [get]
func GetMyStats(c *gin.Context) {
	userID, _ := c.Get("userID")
	respondWithPlayerStats(c, userID.(string))
}

// GetPlayerStats godoc
// @Summary      Get any player's win/loss statistics
// @Description  Aggregates a player's completed games across playgroups. Performs no membership check; stats are readable for any user id.
// @Tags         games
// @Produce      json
// @Param        userId      path  string true  "User ID"
// @Param        playgroupId query int    false "Restrict stats to this playgroup"
// @Success      200 {object} PlayerStatsResponse
// @Router       /games/stats/{userId} [get]
func GetPlayerStats(c *gin.Context) {
	respondWithPlayerStats(c, c.Param("userId"))
}

func respondWithPlayerStats(c *gin.Context, userID string) {
	query := database.DB.
		Preload("Commander").
		Joins("JOIN games ON games.id = game_players.game_id").
		Where("game_players.user_id = ? AND games.is_completed = ?", userID, true)

	if playgroupIDStr := c.Query("playgroupId"); playgroupIDStr != "" {
		playgroupID, err := strconv.Atoi(playgroupIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid playgroup ID"})
			return
		}
		query = query.Where("games.playgroup_id = ?", playgroupID)
	}

	// Stable ordering keeps the commander breakdown deterministic.
	var rows []models.GamePlayer
	if err := query.Order("game_players.id").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve player results"})
		return
	}

	// A user with no games still gets a zeroed stats block, not an error.
	var user models.User
	database.DB.First(&user, "id = ?", userID)

	c.JSON(http.StatusOK, computePlayerStats(userID, user.DisplayName, rows))
}

// endregion
