package handler

import (
	"net/http"
	"time"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"
	"mondaymagic/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	UserName    string `json:"user_name" binding:"required" example:"mtgplayer"`
	Email       string `json:"email" binding:"required,email" example:"player@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"secret123"`
	DisplayName string `json:"display_name" binding:"required" example:"Monday Magic Mike"`
	Bio         string `json:"bio" example:"Group hug enjoyer"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	UserName string `json:"user_name" binding:"required" example:"mtgplayer"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponse defines the structure for a user profile.
type UserResponse struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// AuthResponse is the envelope returned by register and login.
type AuthResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func newUserResponse(user models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		UserName:    user.UserName,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  AuthResponse
// @Failure      409  {object}  AuthResponse
// @Failure      500  {object}  AuthResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{Success: false, Error: err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("user_name = ? OR email = ?", input.UserName, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, AuthResponse{Success: false, Error: "Username or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{Success: false, Error: "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	user := models.User{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		DisplayName:  input.DisplayName,
		Bio:          input.Bio,
		LastLoginAt:  now,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{Success: false, Error: "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{Success: false, Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Success: true, Token: token, User: newUserResponse(user)})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  AuthResponse "Invalid input"
// @Failure      401  {object}  AuthResponse "Invalid credentials"
// @Failure      500  {object}  AuthResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{Success: false, Error: err.Error()})
		return
	}

	// Same response for unknown user and wrong password, no account oracle.
	var user models.User
	if err := database.DB.Where("user_name = ?", input.UserName).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{Success: false, Error: "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{Success: false, Error: "Invalid username or password"})
		return
	}

	user.LastLoginAt = time.Now().UTC()
	database.DB.Model(&user).Update("last_login_at", user.LastLoginAt)

	token, err := jwt.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{Success: false, Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Success: true, Token: token, User: newUserResponse(user)})
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID.(string)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// endregion
